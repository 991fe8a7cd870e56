package lighting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolight/autolight-analyser/internal/model"
)

func symbols(fixtures []model.CatalogFixture) []string {
	out := make([]string, len(fixtures))
	for i, f := range fixtures {
		out[i] = f.SymbolName
	}
	return out
}

func TestParseBudgetTier(t *testing.T) {
	tests := []struct {
		input string
		want  BudgetTier
		ok    bool
	}{
		{"below", TierBelow, true},
		{"within", TierWithin, true},
		{"above", TierAbove, true},
		{" Within ", TierWithin, true},
		{"ABOVE", TierAbove, true},
		{"between", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseBudgetTier(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommendTierBoundaries(t *testing.T) {
	// Reference price 1000 with 15% tolerance: band is [850.00, 1150.00].
	ref := fixture("REF_PANEL", 4000, 40, "1000.00")
	catalog := []model.CatalogFixture{
		ref,
		fixture("JUST_BELOW", 4000, 40, "849.99"),
		fixture("LOWER_BOUND", 4000, 40, "850.00"),
		fixture("UPPER_BOUND", 4000, 40, "1150.00"),
		fixture("JUST_ABOVE", 4000, 40, "1150.01"),
	}
	price := decimal.RequireFromString("1000.00")

	below := Recommend(price, ref, TierBelow, catalog, 10)
	assert.Equal(t, []string{"JUST_BELOW"}, symbols(below))

	within := Recommend(price, ref, TierWithin, catalog, 10)
	assert.ElementsMatch(t, []string{"LOWER_BOUND", "UPPER_BOUND"}, symbols(within))

	above := Recommend(price, ref, TierAbove, catalog, 10)
	assert.Equal(t, []string{"JUST_ABOVE"}, symbols(above))
}

func TestRecommendExcludesReference(t *testing.T) {
	ref := fixture("REF_PANEL", 4000, 40, "1000.00")
	catalog := []model.CatalogFixture{
		ref,
		fixture("ALT_PANEL", 4100, 41, "1050.00"),
	}
	price := decimal.RequireFromString("1000.00")

	got := Recommend(price, ref, TierWithin, catalog, 10)
	assert.NotContains(t, symbols(got), "REF_PANEL")
	assert.Equal(t, []string{"ALT_PANEL"}, symbols(got))
}

func TestRecommendRanksByLumenSimilarity(t *testing.T) {
	// Identical efficiency profiles, different lumen distances from the
	// reference: the closer fixture must rank first.
	ref := fixture("REF_PANEL", 4000, 40, "1000.00")
	catalog := []model.CatalogFixture{
		fixture("FAR_MATCH", 2000, 20, "900.00"),
		fixture("CLOSE_MATCH", 3900, 39, "900.00"),
	}
	price := decimal.RequireFromString("1000.00")

	got := Recommend(price, ref, TierWithin, catalog, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "CLOSE_MATCH", got[0].SymbolName)
	assert.Equal(t, "FAR_MATCH", got[1].SymbolName)
}

func TestRecommendTieBreaksBySymbolName(t *testing.T) {
	ref := fixture("REF_PANEL", 4000, 40, "1000.00")
	// Identical in every ranked dimension, so only the name decides.
	catalog := []model.CatalogFixture{
		fixture("ZETA_PANEL", 4000, 40, "950.00"),
		fixture("ALPHA_PANEL", 4000, 40, "950.00"),
	}
	price := decimal.RequireFromString("1000.00")

	got := Recommend(price, ref, TierWithin, catalog, 10)
	assert.Equal(t, []string{"ALPHA_PANEL", "ZETA_PANEL"}, symbols(got))
}

func TestRecommendLimit(t *testing.T) {
	ref := fixture("REF_PANEL", 4000, 40, "1000.00")
	catalog := []model.CatalogFixture{
		fixture("ALT_1", 4000, 40, "900.00"),
		fixture("ALT_2", 3900, 39, "950.00"),
		fixture("ALT_3", 3800, 38, "1000.00"),
		fixture("ALT_4", 3700, 37, "1050.00"),
	}
	price := decimal.RequireFromString("1000.00")

	t.Run("truncates to limit", func(t *testing.T) {
		got := Recommend(price, ref, TierWithin, catalog, 2)
		assert.Len(t, got, 2)
	})

	t.Run("returns all when fewer qualify", func(t *testing.T) {
		got := Recommend(price, ref, TierWithin, catalog, 15)
		assert.Len(t, got, 4)
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		got := Recommend(price, ref, TierWithin, catalog, 0)
		assert.Len(t, got, 4)
	})
}

func TestRecommendEmptyResults(t *testing.T) {
	ref := fixture("REF_PANEL", 4000, 40, "1000.00")
	price := decimal.RequireFromString("1000.00")

	t.Run("empty catalog", func(t *testing.T) {
		got := Recommend(price, ref, TierWithin, nil, 10)
		assert.Empty(t, got)
	})

	t.Run("no fixtures in tier", func(t *testing.T) {
		catalog := []model.CatalogFixture{
			fixture("CHEAP", 4000, 40, "100.00"),
		}
		got := Recommend(price, ref, TierAbove, catalog, 10)
		assert.Empty(t, got)
	})
}

func TestRecommendIdempotent(t *testing.T) {
	ref := fixture("REF_PANEL", 4000, 40, "1000.00")
	catalog := []model.CatalogFixture{
		fixture("ALT_1", 4000, 40, "900.00"),
		fixture("ALT_2", 3900, 39, "950.00"),
		fixture("ALT_3", 4200, 45, "1100.00"),
		fixture("ALT_4", 2500, 20, "880.00"),
	}
	price := decimal.RequireFromString("1000.00")

	first := Recommend(price, ref, TierWithin, catalog, 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, symbols(first), symbols(Recommend(price, ref, TierWithin, catalog, 10)))
	}
}
