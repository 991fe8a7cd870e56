// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines handlers for the public catalog API.  These routes let
// unauthenticated users (and vendors) browse the fixture catalog, inspect
// efficiency scores and ask for budget-tier recommendations.

package handler

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autolight/autolight-analyser/internal/lighting"
	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated browsing.
type PublicHandler struct {
	CatalogRepo *repository.CatalogRepo // provides access to catalog data
}

// scoredFixture decorates a catalog entry with its efficiency score for
// list and detail responses.
type scoredFixture struct {
	model.CatalogFixture
	EfficiencyScore float64 `json:"efficiency_score"`
}

func scored(f model.CatalogFixture) scoredFixture {
	return scoredFixture{CatalogFixture: f, EfficiencyScore: lighting.EfficiencyScore(f)}
}

// GetCatalog handles GET /v1/catalog and returns the whole catalog with
// efficiency scores, ordered by symbol name.
func (h *PublicHandler) GetCatalog(c echo.Context) error {
	items, err := h.CatalogRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]scoredFixture, 0, len(items))
	for _, f := range items {
		out = append(out, scored(f))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetCatalogFixture handles GET /v1/catalog/:symbol and returns a
// single fixture by its symbol name.
func (h *PublicHandler) GetCatalogFixture(c echo.Context) error {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "symbol is required"})
	}
	f, err := h.CatalogRepo.GetBySymbol(c.Request().Context(), symbol)
	if err != nil {
		if err == repository.ErrFixtureNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "catalog fixture not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, scored(*f))
}

// GetRecommendations handles GET /v1/catalog/:symbol/recommendations.
// Query parameters: budget_tier (below|within|above, default within)
// and limit (default 10).  The reference fixture itself never appears
// in the result.
func (h *PublicHandler) GetRecommendations(c echo.Context) error {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "symbol is required"})
	}
	tierParam := c.QueryParam("budget_tier")
	tier := lighting.TierWithin
	if strings.TrimSpace(tierParam) != "" {
		parsed, ok := lighting.ParseBudgetTier(tierParam)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "budget_tier must be below, within or above"})
		}
		tier = parsed
	}
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
		}
		limit = n
	}

	ctx := c.Request().Context()
	ref, err := h.CatalogRepo.GetBySymbol(ctx, symbol)
	if err != nil {
		if err == repository.ErrFixtureNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "catalog fixture not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	catalog, err := h.CatalogRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	recs := lighting.Recommend(ref.UnitCost, *ref, tier, catalog, limit)
	out := make([]scoredFixture, 0, len(recs))
	for _, f := range recs {
		out = append(out, scored(f))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reference":   scored(*ref),
		"budget_tier": tier,
		"items":       out,
	})
}

// GetRoomTypes handles GET /v1/room-types and returns the supported
// room types with their standard illuminance levels.
func (h *PublicHandler) GetRoomTypes(c echo.Context) error {
	types := lighting.RoomTypes()
	sort.Strings(types)
	out := make([]echo.Map, 0, len(types))
	for _, t := range types {
		out = append(out, echo.Map{"room_type": t, "required_lux": lighting.RequiredLux(t)})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
