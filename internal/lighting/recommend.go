package lighting

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autolight/autolight-analyser/internal/model"
)

// BudgetTier selects which price band of the catalog a recommendation
// query looks at, relative to a reference price.
type BudgetTier string

const (
	TierBelow  BudgetTier = "below"
	TierWithin BudgetTier = "within"
	TierAbove  BudgetTier = "above"
)

// PriceTolerance is the half-width of the "within budget" band as a
// fraction of the reference price.
const PriceTolerance = 0.15

// Ranking weights: candidates are ordered by a single key blending how
// close their lumen output is to the reference fixture with their
// efficiency score.
const (
	similarityWeight = 0.6
	scoreWeight      = 0.4
)

// DefaultRecommendLimit caps result length when the caller passes a
// non-positive limit.
const DefaultRecommendLimit = 10

// ParseBudgetTier maps a request string onto a BudgetTier.  The second
// return value is false for unknown tiers.
func ParseBudgetTier(s string) (BudgetTier, bool) {
	switch BudgetTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierBelow:
		return TierBelow, true
	case TierWithin:
		return TierWithin, true
	case TierAbove:
		return TierAbove, true
	}
	return "", false
}

// Recommend returns catalog fixtures in the requested budget tier
// relative to referencePrice, ranked best-first and truncated to limit.
//
// The band bounds are referencePrice*(1±PriceTolerance); the bounds
// themselves belong to the within tier, so every price falls into
// exactly one tier.  The reference fixture is always excluded from its
// own recommendations.  Ties on the ranking key break by ascending
// symbol name, which together with the deterministic score makes the
// result identical for identical inputs.  No qualifying fixtures is
// not an error: the result is simply empty.
func Recommend(referencePrice decimal.Decimal, ref model.CatalogFixture, tier BudgetTier, catalog []model.CatalogFixture, limit int) []model.CatalogFixture {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	tol := decimal.NewFromFloat(PriceTolerance)
	one := decimal.NewFromInt(1)
	low := referencePrice.Mul(one.Sub(tol))
	high := referencePrice.Mul(one.Add(tol))

	type candidate struct {
		fixture model.CatalogFixture
		key     float64
	}
	candidates := make([]candidate, 0, len(catalog))
	for _, f := range catalog {
		if f.SymbolName == ref.SymbolName {
			continue
		}
		if !inTier(f.UnitCost, low, high, tier) {
			continue
		}
		key := similarityWeight*lumenSimilarity(f.Lumens, ref.Lumens)*100 +
			scoreWeight*EfficiencyScore(f)
		candidates = append(candidates, candidate{fixture: f, key: key})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].key != candidates[j].key {
			return candidates[i].key > candidates[j].key
		}
		return candidates[i].fixture.SymbolName < candidates[j].fixture.SymbolName
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]model.CatalogFixture, len(candidates))
	for i, c := range candidates {
		out[i] = c.fixture
	}
	return out
}

// inTier reports whether a unit cost falls into the given band.  The
// closed bounds belong to the within tier.
func inTier(cost, low, high decimal.Decimal, tier BudgetTier) bool {
	switch tier {
	case TierBelow:
		return cost.LessThan(low)
	case TierWithin:
		return cost.GreaterThanOrEqual(low) && cost.LessThanOrEqual(high)
	case TierAbove:
		return cost.GreaterThan(high)
	}
	return false
}

// lumenSimilarity rewards closeness of a candidate's lumen output to
// the reference, from 1.0 (identical) down to 0.0 (off by the full
// reference output or more).
func lumenSimilarity(lumens, refLumens int) float64 {
	den := refLumens
	if den < 1 {
		den = 1
	}
	sim := 1 - math.Abs(float64(lumens-refLumens))/float64(den)
	if sim < 0 {
		return 0
	}
	return sim
}
