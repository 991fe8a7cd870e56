package handler // handler package contains architect room handlers

import (
	"database/sql" // sql is imported for sentinel errors like sql.ErrNoRows
	"errors"       // errors package for comparing sentinels
	"net/http"     // http defines status code constants
	"strings"      // strings manipulates and trims text

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/autolight/autolight-analyser/internal/lighting"
	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/repository"
)

// roomReq is the JSON payload for creating and updating rooms.  All
// dimension fields are optional; the lighting normalizer fills in what
// is missing and reconciles area against length*width.
type roomReq struct {
	Name        *string  `json:"name"`
	RoomType    *string  `json:"room_type"`
	Length      *float64 `json:"length"`
	Width       *float64 `json:"width"`
	Area        *float64 `json:"area"`
	Height      *float64 `json:"height"`
	RequiredLux *float64 `json:"required_lux"`
}

// validationJSON converts a lighting validation failure into a 400
// response naming the offending field.
func validationJSON(c echo.Context, err error) error {
	var ve *lighting.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}

// CreateRoom handles POST /v1/cad-files/:id/rooms.  The room is
// normalized and validated before it is stored so derived fields
// (area, height, required lux) are always consistent on disk.
func (h *ArchitectHandler) CreateRoom(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	cadFileID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.CADFileRepo.GetByIDAndUser(c.Request().Context(), cadFileID, userID); err != nil {
		if err == repository.ErrCADFileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cad file not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body roomReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == nil || strings.TrimSpace(*body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	roomType := model.RoomTypeOther
	if body.RoomType != nil && strings.TrimSpace(*body.RoomType) != "" {
		roomType = strings.ToLower(strings.TrimSpace(*body.RoomType))
	}
	rm := model.Room{
		CADFileID: cadFileID,
		Name:      strings.TrimSpace(*body.Name),
		RoomType:  roomType,
		Length:    body.Length,
		Width:     body.Width,
	}
	if body.Area != nil {
		rm.Area = *body.Area
	}
	if body.Height != nil {
		rm.Height = *body.Height
	}
	if body.RequiredLux != nil {
		rm.RequiredLux = *body.RequiredLux
	}
	lighting.Normalize(&rm)
	if err := lighting.Validate(rm); err != nil {
		return validationJSON(c, err)
	}
	if err := h.RoomRepo.Create(c.Request().Context(), &rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}
	return c.JSON(http.StatusCreated, rm)
}

// ListRooms handles GET /v1/cad-files/:id/rooms.
func (h *ArchitectHandler) ListRooms(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	cadFileID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.CADFileRepo.GetByIDAndUser(c.Request().Context(), cadFileID, userID); err != nil {
		if err == repository.ErrCADFileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cad file not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.RoomRepo.ListByCADFile(c.Request().Context(), cadFileID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *ArchitectHandler) GetRoom(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rm, err := h.RoomRepo.GetByIDAndUser(c.Request().Context(), id, userID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, rm)
}

// UpdateRoom handles PUT/PATCH /v1/rooms/:id.  Absent fields keep their
// current values; the merged room is re-normalized and re-validated so
// an update can never leave inconsistent derived fields behind.
func (h *ArchitectHandler) UpdateRoom(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.RoomRepo.GetByIDAndUser(c.Request().Context(), id, userID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body roomReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.RoomType != nil && strings.TrimSpace(*body.RoomType) != "" {
		cur.RoomType = strings.ToLower(strings.TrimSpace(*body.RoomType))
	}
	if body.Length != nil {
		cur.Length = body.Length
	}
	if body.Width != nil {
		cur.Width = body.Width
	}
	if body.Area != nil {
		cur.Area = *body.Area
	}
	if body.Height != nil {
		cur.Height = *body.Height
	}
	if body.RequiredLux != nil {
		cur.RequiredLux = *body.RequiredLux
	}
	lighting.Normalize(cur)
	if err := lighting.Validate(*cur); err != nil {
		return validationJSON(c, err)
	}
	if err := h.RoomRepo.Update(c.Request().Context(), cur, userID); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, cur)
}

// DeleteRoom handles DELETE /v1/rooms/:id and removes the room with its
// fixture installations.
func (h *ArchitectHandler) DeleteRoom(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.RoomRepo.DeleteByIDAndUser(c.Request().Context(), id, userID); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
