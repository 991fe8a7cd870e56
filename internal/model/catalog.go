package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogFixture is one entry of the lighting catalog: a fixture type
// that can be installed in rooms.  Entries are seeded or imported once
// and are read-only afterwards apart from cosmetic metadata edits.
// This struct corresponds to a row in the `catalog_fixtures` table.
//
// Fields:
//  ID          – primary key identifier.
//  SymbolName  – unique symbol name as it appears in CAD drawings.
//  Brand       – manufacturer name.
//  ModelNumber – manufacturer model number.
//  Lumens      – light output in lumens (>= 0).
//  Wattage     – power consumption in watts (>= 0).
//  BeamAngle   – beam angle in degrees (>= 0).
//  ColorTemp   – color temperature in Kelvin (>= 0).
//  UnitCost    – cost per unit, fixed-point with two decimal places.
//  CreatedAt   – timestamp when the entry was created.
//  UpdatedAt   – timestamp of last update.
type CatalogFixture struct {
	ID          uint64          `json:"id"`           // catalog_fixtures.id
	SymbolName  string          `json:"symbol_name"`  // catalog_fixtures.symbol_name
	Brand       string          `json:"brand"`        // catalog_fixtures.brand
	ModelNumber string          `json:"model_number"` // catalog_fixtures.model_number
	Lumens      int             `json:"lumens"`       // catalog_fixtures.lumens
	Wattage     float64         `json:"wattage"`      // catalog_fixtures.wattage
	BeamAngle   float64         `json:"beam_angle"`   // catalog_fixtures.beam_angle
	ColorTemp   int             `json:"color_temp"`   // catalog_fixtures.color_temp
	UnitCost    decimal.Decimal `json:"unit_cost"`    // catalog_fixtures.unit_cost DECIMAL(10,2)
	CreatedAt   time.Time       `json:"created_at"`   // catalog_fixtures.created_at
	UpdatedAt   time.Time       `json:"updated_at"`   // catalog_fixtures.updated_at
}
