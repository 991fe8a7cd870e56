package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolight/autolight-analyser/internal/lighting"
)

func TestSampleFixturesWellFormed(t *testing.T) {
	fixtures := SampleFixtures()
	require.GreaterOrEqual(t, len(fixtures), 25, "catalog should carry enough fixtures for tiered recommendations")

	seen := make(map[string]bool, len(fixtures))
	for _, f := range fixtures {
		assert.False(t, seen[f.SymbolName], "duplicate symbol %s", f.SymbolName)
		seen[f.SymbolName] = true

		assert.NotEmpty(t, f.Brand, "%s: brand", f.SymbolName)
		assert.NotEmpty(t, f.ModelNumber, "%s: model number", f.SymbolName)
		assert.Greater(t, f.Lumens, 0, "%s: lumens", f.SymbolName)
		assert.Greater(t, f.Wattage, 0.0, "%s: wattage", f.SymbolName)
		assert.Greater(t, f.BeamAngle, 0.0, "%s: beam angle", f.SymbolName)
		assert.Greater(t, f.ColorTemp, 0, "%s: color temp", f.SymbolName)
		assert.True(t, f.UnitCost.IsPositive(), "%s: unit cost", f.SymbolName)
		assert.True(t, f.UnitCost.Equal(f.UnitCost.Round(2)), "%s: unit cost has two decimal places", f.SymbolName)
	}
}

func TestSampleFixturesScoreCleanly(t *testing.T) {
	for _, f := range SampleFixtures() {
		score := lighting.EfficiencyScore(f)
		assert.Greater(t, score, 0.0, "%s should have a positive score", f.SymbolName)
		assert.LessOrEqual(t, score, 100.0, "%s score out of range", f.SymbolName)
	}
}
