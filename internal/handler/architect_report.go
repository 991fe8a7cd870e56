package handler // handler package contains report request handlers

import (
	"fmt"      // fmt builds the report storage path
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities
	"time"     // time stamps the published event

	"github.com/google/uuid"      // uuid names report files collision-free
	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/queue"
	"github.com/autolight/autolight-analyser/internal/repository"
	queuepub "github.com/autolight/autolight-analyser/internal/service"
)

// CreateReport handles POST /v1/cad-files/:id/reports.  It records the
// request, assigns the output path the renderer will write to, and
// publishes a report.requested event.  A broker outage does not fail
// the request; the record is the source of truth and the event is
// best-effort.
func (h *ArchitectHandler) CreateReport(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	cadFileID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	f, err := h.CADFileRepo.GetByIDAndUser(c.Request().Context(), cadFileID, userID)
	if err != nil {
		if err == repository.ErrCADFileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cad file not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		ReportType string `json:"report_type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	reportType := strings.ToLower(strings.TrimSpace(body.ReportType))
	if reportType == "" {
		reportType = model.ReportTypePDF
	}
	if reportType != model.ReportTypePDF && reportType != model.ReportTypeCSV {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "report_type must be pdf or csv"})
	}

	rooms, err := h.RoomRepo.ListByCADFile(c.Request().Context(), f.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	rep := &model.Report{
		CADFileID:  f.ID,
		ReportType: reportType,
		FilePath:   fmt.Sprintf("reports/%d/%s.%s", f.ID, uuid.NewString(), reportType),
	}
	if err := h.ReportRepo.Create(c.Request().Context(), rep); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create report"})
	}

	_ = queuepub.PublishReportRequested(c.Request().Context(), queue.ReportRequestedEvent{
		ReportID:    rep.ID,
		CADFileID:   f.ID,
		UserID:      userID,
		ProjectName: f.ProjectName,
		ReportType:  reportType,
		FilePath:    rep.FilePath,
		RoomCount:   len(rooms),
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, rep)
}

// ListReports handles GET /v1/cad-files/:id/reports and returns the
// reports requested for a CAD file, newest first.
func (h *ArchitectHandler) ListReports(c echo.Context) error {
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
	items, err := h.ReportRepo.ListByCADFile(c.Request().Context(), cadFileID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
