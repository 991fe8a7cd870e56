package lighting

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/autolight/autolight-analyser/internal/model"
)

// opticalLossFactor models real-world optical and reflective losses
// between fixture output and light arriving at the work plane.  It is
// deliberately distinct from the utilization/maintenance factors used
// when sizing a requirement.
const opticalLossFactor = 0.7

// TotalLumens returns the combined lumen output of an installation:
// the catalog fixture's lumens times the installed quantity.
func TotalLumens(inst model.FixtureInstallation) int {
	return inst.Fixture.Lumens * inst.Quantity
}

// TotalCost returns the combined cost of an installation as an exact
// decimal: unit cost times quantity.
func TotalCost(inst model.FixtureInstallation) decimal.Decimal {
	return inst.Fixture.UnitCost.Mul(decimal.NewFromInt(int64(inst.Quantity)))
}

// CurrentLux computes the achieved illuminance of a room from its
// installations, rounded to two decimals:
//
//	round(sum(totalLumens) * opticalLossFactor / area, 2)
//
// Degenerate inputs are not errors: a non-positive area or zero
// installed lumens both yield 0.0.
func CurrentLux(room model.Room, installations []model.FixtureInstallation) float64 {
	if room.Area <= 0 {
		return 0.0
	}
	total := 0
	for _, inst := range installations {
		total += TotalLumens(inst)
	}
	if total == 0 {
		return 0.0
	}
	lux := (float64(total) * opticalLossFactor) / room.Area
	return math.Round(lux*100) / 100
}

// IsAdequatelyLit reports whether the room's achieved illuminance meets
// or exceeds its requirement.
func IsAdequatelyLit(room model.Room, installations []model.FixtureInstallation) bool {
	return CurrentLux(room, installations) >= room.RequiredLux
}
