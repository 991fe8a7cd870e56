package handler // handler package contains architect installation handlers

import (
	"database/sql" // sql is imported for sentinel errors like sql.ErrNoRows
	"net/http"     // http provides status code constants
	"strings"      // strings offers trimming utilities

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/repository"
)

// CreateInstallation handles POST /v1/rooms/:id/installations and
// places a catalog fixture into a room.  The fixture may be referenced
// by catalog_id or by symbol_name; symbol wins when both are present.
func (h *ArchitectHandler) CreateInstallation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.RoomRepo.GetByIDAndUser(c.Request().Context(), roomID, userID); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		CatalogID  *uint64  `json:"catalog_id"`
		SymbolName *string  `json:"symbol_name"`
		Quantity   *int     `json:"quantity"`
		X          *float64 `json:"x"`
		Y          *float64 `json:"y"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var fixture *model.CatalogFixture
	switch {
	case body.SymbolName != nil && strings.TrimSpace(*body.SymbolName) != "":
		fixture, err = h.CatalogRepo.GetBySymbol(c.Request().Context(), strings.TrimSpace(*body.SymbolName))
	case body.CatalogID != nil:
		fixture, err = h.CatalogRepo.GetByID(c.Request().Context(), *body.CatalogID)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "catalog_id or symbol_name is required"})
	}
	if err != nil {
		if err == repository.ErrFixtureNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "catalog fixture not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}
	if quantity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
	}

	inst := model.FixtureInstallation{
		RoomID:    roomID,
		CatalogID: fixture.ID,
		Quantity:  quantity,
		X:         body.X,
		Y:         body.Y,
		Fixture:   *fixture,
	}
	if err := h.InstallationRepo.Create(c.Request().Context(), &inst); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create installation"})
	}
	return c.JSON(http.StatusCreated, inst)
}

// ListInstallations handles GET /v1/rooms/:id/installations and returns
// the room's installations with their catalog fixtures resolved.
func (h *ArchitectHandler) ListInstallations(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.RoomRepo.GetByIDAndUser(c.Request().Context(), roomID, userID); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.InstallationRepo.ListByRoom(c.Request().Context(), roomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateInstallation handles PATCH /v1/installations/:id.  Only the
// quantity is mutable; repositioning or swapping the fixture means
// deleting and recreating the installation.
func (h *ArchitectHandler) UpdateInstallation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Quantity == nil || *body.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
	}
	if err := h.InstallationRepo.UpdateQuantity(c.Request().Context(), id, userID, *body.Quantity); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "installation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.InstallationRepo.GetByIDAndUser(c.Request().Context(), id, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteInstallation handles DELETE /v1/installations/:id.
func (h *ArchitectHandler) DeleteInstallation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.InstallationRepo.DeleteByIDAndUser(c.Request().Context(), id, userID); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "installation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
