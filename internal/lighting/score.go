package lighting

import (
	"math"

	"github.com/autolight/autolight-analyser/internal/model"
)

// Efficiency score parameters.  The score blends luminous efficacy
// (lumens per watt) with value (lumens per currency unit), each
// normalized against a reference ceiling, into a single 0..100 figure.
const (
	efficacyWeight = 0.6
	valueWeight    = 0.4

	// refEfficacy is the lm/W level treated as a perfect efficacy
	// component; 150 lm/W sits at the top of commercial LED ranges.
	refEfficacy = 150.0

	// refValue is the lumens-per-currency-unit level treated as a
	// perfect value component.
	refValue = 2.5
)

// EfficiencyScore computes the desirability score of a catalog fixture
// from its lumens, wattage and unit cost.  The function is
// deterministic and total: every valid fixture yields a defined value,
// and a fixture with zero wattage or zero cost scores 0 rather than
// dividing by zero.  Scores land in [0, 100], higher is better.
func EfficiencyScore(f model.CatalogFixture) float64 {
	if f.Wattage <= 0 || !f.UnitCost.IsPositive() {
		return 0
	}
	cost, _ := f.UnitCost.Float64()
	efficacy := float64(f.Lumens) / f.Wattage
	value := float64(f.Lumens) / cost

	score := efficacyWeight*clamp01(efficacy/refEfficacy)*100 +
		valueWeight*clamp01(value/refValue)*100
	return round2(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
