package handler // handler package contains architect CAD file handlers

import (
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/repository"
)

// CreateCADFile handles POST /v1/cad-files and registers an uploaded
// floor plan for the authenticated architect.  The record starts in
// status pending; room extraction moves it through the lifecycle.
func (h *ArchitectHandler) CreateCADFile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		ProjectName string `json:"project_name"`
		Filename    string `json:"filename"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	projectName := strings.TrimSpace(body.ProjectName)
	filename := strings.TrimSpace(body.Filename)
	if projectName == "" || filename == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_name and filename are required"})
	}
	f := &model.CADFile{
		UserID:      userID,
		ProjectName: projectName,
		Filename:    filename,
	}
	if err := h.CADFileRepo.Create(c.Request().Context(), f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create cad file"})
	}
	return c.JSON(http.StatusCreated, f)
}

// ListCADFiles handles GET /v1/cad-files and returns all CAD files of
// the authenticated architect, newest first.
func (h *ArchitectHandler) ListCADFiles(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.CADFileRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetCADFile handles GET /v1/cad-files/:id and returns one CAD file
// together with its extracted rooms.
func (h *ArchitectHandler) GetCADFile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	f, err := h.CADFileRepo.GetByIDAndUser(c.Request().Context(), id, userID)
	if err != nil {
		if err == repository.ErrCADFileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cad file not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	rooms, err := h.RoomRepo.ListByCADFile(c.Request().Context(), f.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"cad_file": f, "rooms": rooms})
}

// UpdateCADFileStatus handles PATCH /v1/cad-files/:id/status.  The
// status must be one of the lifecycle constants; error_message is only
// meaningful for failed runs.
func (h *ArchitectHandler) UpdateCADFileStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status       string  `json:"status"`
		ErrorMessage *string `json:"error_message"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.ToLower(strings.TrimSpace(body.Status))
	switch status {
	case model.CADStatusPending, model.CADStatusProcessing, model.CADStatusCompleted, model.CADStatusFailed:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	// ownership check before the unscoped status update
	if _, err := h.CADFileRepo.GetByIDAndUser(c.Request().Context(), id, userID); err != nil {
		if err == repository.ErrCADFileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cad file not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.CADFileRepo.UpdateStatus(c.Request().Context(), id, status, body.ErrorMessage); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.CADFileRepo.GetByIDAndUser(c.Request().Context(), id, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteCADFile handles DELETE /v1/cad-files/:id and removes the file
// with every room, installation and report it owns.
func (h *ArchitectHandler) DeleteCADFile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.CADFileRepo.DeleteByIDAndUser(c.Request().Context(), id, userID); err != nil {
		if err == repository.ErrCADFileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cad file not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
