// Package catalog provides the sample fixture data set and the import
// routine used by cmd/seed to populate an empty catalog.
package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autolight/autolight-analyser/internal/model"
	"github.com/autolight/autolight-analyser/internal/repository"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SampleFixtures returns the built-in catalog data set: fixtures across
// several families (panels, downlights, track lights, linear, high bay,
// bulkhead, strip) with varied price points so budget-tier
// recommendations have material to work with.  Prices are in INR.
func SampleFixtures() []model.CatalogFixture {
	return []model.CatalogFixture{
		{SymbolName: "LED_PANEL_600X600", ModelNumber: "LP-600-40W", Brand: "Philips", Lumens: 4000, Wattage: 40, BeamAngle: 120, ColorTemp: 4000, UnitCost: money("2499.00")},
		{SymbolName: "LED_PANEL_600X600_ECO", ModelNumber: "LP-600-36W-ECO", Brand: "Syska", Lumens: 3800, Wattage: 36, BeamAngle: 120, ColorTemp: 4000, UnitCost: money("1799.00")},
		{SymbolName: "LED_PANEL_600X600_PRO", ModelNumber: "LP-600-45W-PRO", Brand: "Havells", Lumens: 4500, Wattage: 45, BeamAngle: 120, ColorTemp: 4000, UnitCost: money("3299.00")},
		{SymbolName: "DOWNLIGHT_8W", ModelNumber: "DL-8W-DIM", Brand: "GE Lighting", Lumens: 800, Wattage: 8, BeamAngle: 45, ColorTemp: 2700, UnitCost: money("699.00")},
		{SymbolName: "DOWNLIGHT_10W", ModelNumber: "DL-10W-STD", Brand: "Bajaj", Lumens: 1000, Wattage: 10, BeamAngle: 60, ColorTemp: 3000, UnitCost: money("749.00")},
		{SymbolName: "DOWNLIGHT_12W", ModelNumber: "DL-12W-CCT", Brand: "Osram", Lumens: 1200, Wattage: 12, BeamAngle: 60, ColorTemp: 3000, UnitCost: money("899.00")},
		{SymbolName: "DOWNLIGHT_12W_BUDGET", ModelNumber: "DL-12W-STD", Brand: "Wipro", Lumens: 1100, Wattage: 12, BeamAngle: 60, ColorTemp: 3000, UnitCost: money("599.00")},
		{SymbolName: "DOWNLIGHT_15W_PRO", ModelNumber: "DL-15W-PRO", Brand: "Philips", Lumens: 1500, Wattage: 15, BeamAngle: 60, ColorTemp: 3000, UnitCost: money("1299.00")},
		{SymbolName: "TRACKLIGHT_15W", ModelNumber: "TL-15W-ECO", Brand: "Syska", Lumens: 1800, Wattage: 15, BeamAngle: 30, ColorTemp: 3500, UnitCost: money("1199.00")},
		{SymbolName: "TRACKLIGHT_20W", ModelNumber: "TL-20W-ADJ", Brand: "GE Lighting", Lumens: 2000, Wattage: 20, BeamAngle: 30, ColorTemp: 3500, UnitCost: money("1599.00")},
		{SymbolName: "TRACKLIGHT_25W", ModelNumber: "TL-25W-PRO", Brand: "Havells", Lumens: 2500, Wattage: 25, BeamAngle: 30, ColorTemp: 3500, UnitCost: money("2199.00")},
		{SymbolName: "LINEAR_LED_36W", ModelNumber: "LL-1200-36W", Brand: "Wipro", Lumens: 4500, Wattage: 36, BeamAngle: 110, ColorTemp: 4000, UnitCost: money("1799.00")},
		{SymbolName: "LINEAR_LED_40W", ModelNumber: "LL-1200-40W", Brand: "Philips", Lumens: 4800, Wattage: 40, BeamAngle: 110, ColorTemp: 4000, UnitCost: money("2299.00")},
		{SymbolName: "LINEAR_LED_50W", ModelNumber: "LL-1500-50W", Brand: "Osram", Lumens: 5500, Wattage: 50, BeamAngle: 110, ColorTemp: 4000, UnitCost: money("2899.00")},
		{SymbolName: "PANEL_300X1200", ModelNumber: "LP-1200-48W", Brand: "Osram", Lumens: 5200, Wattage: 48, BeamAngle: 120, ColorTemp: 4000, UnitCost: money("2899.00")},
		{SymbolName: "PANEL_300X1200_ECO", ModelNumber: "LP-1200-40W", Brand: "Syska", Lumens: 4800, Wattage: 40, BeamAngle: 120, ColorTemp: 4000, UnitCost: money("2199.00")},
		{SymbolName: "PANEL_300X1200_PRO", ModelNumber: "LP-1200-55W", Brand: "Havells", Lumens: 5800, Wattage: 55, BeamAngle: 120, ColorTemp: 4000, UnitCost: money("3499.00")},
		{SymbolName: "HIGHBAY_120W", ModelNumber: "HB-120W-ECO", Brand: "Bajaj", Lumens: 16000, Wattage: 120, BeamAngle: 90, ColorTemp: 5000, UnitCost: money("6999.00")},
		{SymbolName: "HIGHBAY_150W", ModelNumber: "HB-150W-IP65", Brand: "Cree", Lumens: 18000, Wattage: 150, BeamAngle: 90, ColorTemp: 5000, UnitCost: money("8999.00")},
		{SymbolName: "HIGHBAY_200W", ModelNumber: "HB-200W-PRO", Brand: "Philips", Lumens: 22000, Wattage: 200, BeamAngle: 90, ColorTemp: 5000, UnitCost: money("11999.00")},
		{SymbolName: "BULKHEAD_15W", ModelNumber: "BH-15W-ECO", Brand: "Wipro", Lumens: 1600, Wattage: 15, BeamAngle: 180, ColorTemp: 4000, UnitCost: money("899.00")},
		{SymbolName: "BULKHEAD_18W", ModelNumber: "BH-18W-IP54", Brand: "Philips", Lumens: 1800, Wattage: 18, BeamAngle: 180, ColorTemp: 4000, UnitCost: money("1299.00")},
		{SymbolName: "BULKHEAD_22W", ModelNumber: "BH-22W-PRO", Brand: "Havells", Lumens: 2200, Wattage: 22, BeamAngle: 180, ColorTemp: 4000, UnitCost: money("1699.00")},
		{SymbolName: "STRIP_10W", ModelNumber: "LS-500-10W", Brand: "Syska", Lumens: 1200, Wattage: 10, BeamAngle: 120, ColorTemp: 3000, UnitCost: money("549.00")},
		{SymbolName: "STRIP_14W", ModelNumber: "LS-600-14W", Brand: "Osram", Lumens: 1400, Wattage: 14, BeamAngle: 120, ColorTemp: 3000, UnitCost: money("799.00")},
	}
}

// Seed inserts every sample fixture that is not already present,
// keyed by symbol name.  The run is idempotent; re-running against a
// seeded database inserts nothing.  It returns the number of fixtures
// inserted.
func Seed(ctx context.Context, repo *repository.CatalogRepo) (int, error) {
	runID := uuid.NewString()
	inserted := 0
	for _, f := range SampleFixtures() {
		_, err := repo.GetBySymbol(ctx, f.SymbolName)
		if err == nil {
			continue // already seeded
		}
		if !errors.Is(err, repository.ErrFixtureNotFound) {
			return inserted, err
		}
		fixture := f
		if err := repo.Create(ctx, &fixture); err != nil {
			return inserted, err
		}
		inserted++
	}
	log.Printf("catalog seed %s: %d fixtures inserted", runID, inserted)
	return inserted, nil
}
