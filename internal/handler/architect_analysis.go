package handler // handler package contains illuminance analysis handlers

import (
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4"  // echo is the web framework used for handlers
	"github.com/shopspring/decimal" // decimal keeps cost totals exact

	"github.com/autolight/autolight-analyser/internal/lighting"
	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/repository"
)

// roomAnalysis is the illuminance report for a single room.  Lux values
// are pre-rounded to two decimals by the lighting package.
type roomAnalysis struct {
	Room           model.Room      `json:"room"`
	RequiredLumens int             `json:"required_lumens"`
	TotalLumens    int             `json:"total_lumens"`
	CurrentLux     float64         `json:"current_lux"`
	IsAdequate     bool            `json:"is_adequate"`
	FixtureCount   int             `json:"fixture_count"`
	TotalCost      decimal.Decimal `json:"total_cost"`
}

func analyseRoom(rm model.Room, installations []model.FixtureInstallation) roomAnalysis {
	totalLumens := 0
	totalCost := decimal.Zero
	count := 0
	for _, inst := range installations {
		totalLumens += lighting.TotalLumens(inst)
		totalCost = totalCost.Add(lighting.TotalCost(inst))
		count += inst.Quantity
	}
	return roomAnalysis{
		Room:           rm,
		RequiredLumens: lighting.RequiredLumens(rm),
		TotalLumens:    totalLumens,
		CurrentLux:     lighting.CurrentLux(rm, installations),
		IsAdequate:     lighting.IsAdequatelyLit(rm, installations),
		FixtureCount:   count,
		TotalCost:      totalCost,
	}
}

// AnalyseRoom handles GET /v1/rooms/:id/illuminance and returns the
// lighting analysis of one room against its illuminance requirement.
func (h *ArchitectHandler) AnalyseRoom(c echo.Context) error {
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
	installations, err := h.InstallationRepo.ListByRoom(c.Request().Context(), rm.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, analyseRoom(*rm, installations))
}

// AnalyseCADFile handles GET /v1/cad-files/:id/analysis and returns the
// per-room analyses of a whole floor plan plus project totals.
func (h *ArchitectHandler) AnalyseCADFile(c echo.Context) error {
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

	analyses := make([]roomAnalysis, 0, len(rooms))
	adequate := 0
	projectCost := decimal.Zero
	for _, rm := range rooms {
		installations, err := h.InstallationRepo.ListByRoom(c.Request().Context(), rm.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		a := analyseRoom(rm, installations)
		if a.IsAdequate {
			adequate++
		}
		projectCost = projectCost.Add(a.TotalCost)
		analyses = append(analyses, a)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"cad_file":       f,
		"rooms":          analyses,
		"room_count":     len(analyses),
		"adequate_rooms": adequate,
		"total_cost":     projectCost,
	})
}
