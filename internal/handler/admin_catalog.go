package handler // handler package contains admin catalog maintenance handlers

import (
	"database/sql" // sql is imported for sentinel errors like sql.ErrNoRows
	"net/http"     // http provides status code constants
	"strings"      // strings offers trimming utilities

	"github.com/labstack/echo/v4"   // echo is the web framework used for handlers
	"github.com/shopspring/decimal" // decimal parses unit costs exactly

	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/repository"
)

// AdminHandler bundles repositories for catalog maintenance.  Only
// users with the ADMIN role reach these handlers.
type AdminHandler struct {
	CatalogRepo      *repository.CatalogRepo      // CatalogRepo provides catalog persistence
	InstallationRepo *repository.InstallationRepo // InstallationRepo counts references before deletes
}

// NewAdminHandler constructs a new AdminHandler and panics if a
// dependency is nil.
func NewAdminHandler(catalog *repository.CatalogRepo, installations *repository.InstallationRepo) *AdminHandler {
	if catalog == nil || installations == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{CatalogRepo: catalog, InstallationRepo: installations}
}

// CreateCatalogFixture handles POST /v1/admin/catalog and adds a new
// entry to the fixture catalog.  Unit cost is accepted as a decimal
// string to avoid float rounding on money.
func (h *AdminHandler) CreateCatalogFixture(c echo.Context) error {
	var body struct {
		SymbolName  string  `json:"symbol_name"`
		Brand       string  `json:"brand"`
		ModelNumber string  `json:"model_number"`
		Lumens      int     `json:"lumens"`
		Wattage     float64 `json:"wattage"`
		BeamAngle   float64 `json:"beam_angle"`
		ColorTemp   int     `json:"color_temp"`
		UnitCost    string  `json:"unit_cost"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	symbol := strings.TrimSpace(body.SymbolName)
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "symbol_name is required"})
	}
	if body.Lumens < 0 || body.Wattage < 0 || body.BeamAngle < 0 || body.ColorTemp < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "photometric fields cannot be negative"})
	}
	cost, err := decimal.NewFromString(strings.TrimSpace(body.UnitCost))
	if err != nil || cost.IsNegative() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unit_cost must be a non-negative decimal"})
	}
	f := &model.CatalogFixture{
		SymbolName:  symbol,
		Brand:       strings.TrimSpace(body.Brand),
		ModelNumber: strings.TrimSpace(body.ModelNumber),
		Lumens:      body.Lumens,
		Wattage:     body.Wattage,
		BeamAngle:   body.BeamAngle,
		ColorTemp:   body.ColorTemp,
		UnitCost:    cost.Round(2),
	}
	if err := h.CatalogRepo.Create(c.Request().Context(), f); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "symbol name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create fixture"})
	}
	return c.JSON(http.StatusCreated, f)
}

// UpdateCatalogFixture handles PATCH /v1/admin/catalog/:id.  Only brand
// and model number are editable; photometric data and price are fixed
// once installations may depend on them.
func (h *AdminHandler) UpdateCatalogFixture(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.CatalogRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrFixtureNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "catalog fixture not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		Brand       *string `json:"brand"`
		ModelNumber *string `json:"model_number"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	brand := cur.Brand
	if body.Brand != nil && strings.TrimSpace(*body.Brand) != "" {
		brand = strings.TrimSpace(*body.Brand)
	}
	modelNumber := cur.ModelNumber
	if body.ModelNumber != nil && strings.TrimSpace(*body.ModelNumber) != "" {
		modelNumber = strings.TrimSpace(*body.ModelNumber)
	}
	if err := h.CatalogRepo.UpdateMetadata(c.Request().Context(), id, brand, modelNumber); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "catalog fixture not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.CatalogRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteCatalogFixture handles DELETE /v1/admin/catalog/:id.  A fixture
// referenced by any installation cannot be deleted; doing so would
// orphan room analyses.
func (h *AdminHandler) DeleteCatalogFixture(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	n, err := h.InstallationRepo.CountByCatalog(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if n > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"error": "fixture is referenced by installations"})
	}
	if err := h.CatalogRepo.DeleteByID(c.Request().Context(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "catalog fixture not found"})
		}
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "fixture is referenced by installations"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
