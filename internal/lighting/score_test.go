package lighting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/autolight/autolight-analyser/internal/model"
)

func fixture(symbol string, lumens int, wattage float64, unitCost string) model.CatalogFixture {
	return model.CatalogFixture{
		SymbolName: symbol,
		Lumens:     lumens,
		Wattage:    wattage,
		UnitCost:   decimal.RequireFromString(unitCost),
	}
}

func TestEfficiencyScoreSentinels(t *testing.T) {
	t.Run("zero wattage", func(t *testing.T) {
		f := fixture("SOLAR_MARKER", 400, 0, "299.00")
		assert.NotPanics(t, func() { EfficiencyScore(f) })
		assert.Equal(t, 0.0, EfficiencyScore(f))
	})

	t.Run("zero cost", func(t *testing.T) {
		f := fixture("FREEBIE", 400, 5, "0.00")
		assert.NotPanics(t, func() { EfficiencyScore(f) })
		assert.Equal(t, 0.0, EfficiencyScore(f))
	})

	t.Run("zero lumens scores zero", func(t *testing.T) {
		f := fixture("DUD", 0, 10, "499.00")
		assert.Equal(t, 0.0, EfficiencyScore(f))
	})
}

func TestEfficiencyScoreDeterministic(t *testing.T) {
	f := fixture("DOWNLIGHT_15W_PRO", 1500, 15, "1299.00")
	first := EfficiencyScore(f)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, EfficiencyScore(f))
	}
}

func TestEfficiencyScoreValue(t *testing.T) {
	// 1500 lm / 15 W = 100 lm/W -> 0.6667 of the 150 lm/W ceiling.
	// 1500 lm / 1299.00 = 1.1547 lm per unit -> 0.4619 of the 2.5 ceiling.
	// 0.6*66.67 + 0.4*46.19 = 58.48
	f := fixture("DOWNLIGHT_15W_PRO", 1500, 15, "1299.00")
	assert.Equal(t, 58.48, EfficiencyScore(f))
}

func TestEfficiencyScoreOrdering(t *testing.T) {
	t.Run("higher efficacy wins at equal cost", func(t *testing.T) {
		efficient := fixture("A", 1200, 10, "899.00")
		wasteful := fixture("B", 1200, 20, "899.00")
		assert.Greater(t, EfficiencyScore(efficient), EfficiencyScore(wasteful))
	})

	t.Run("cheaper wins at equal output", func(t *testing.T) {
		budget := fixture("A", 1200, 12, "599.00")
		premium := fixture("B", 1200, 12, "1499.00")
		assert.Greater(t, EfficiencyScore(budget), EfficiencyScore(premium))
	})
}

func TestEfficiencyScoreBounds(t *testing.T) {
	// Components cap at their reference ceilings, so the score never
	// exceeds 100 no matter how extreme the fixture.
	extreme := fixture("LAB_PROTOTYPE", 100000, 10, "1.00")
	assert.Equal(t, 100.0, EfficiencyScore(extreme))

	ordinary := fixture("DOWNLIGHT_12W", 1200, 12, "899.00")
	score := EfficiencyScore(ordinary)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}
