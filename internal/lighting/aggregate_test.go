package lighting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/autolight/autolight-analyser/internal/model"
)

func installation(lumens, quantity int, unitCost string) model.FixtureInstallation {
	return model.FixtureInstallation{
		Quantity: quantity,
		Fixture: model.CatalogFixture{
			SymbolName: "TEST_FIXTURE",
			Lumens:     lumens,
			UnitCost:   decimal.RequireFromString(unitCost),
		},
	}
}

func TestTotalLumens(t *testing.T) {
	assert.Equal(t, 2000, TotalLumens(installation(1000, 2, "599.00")))
	assert.Equal(t, 0, TotalLumens(installation(0, 5, "599.00")))
}

func TestTotalCostLinearInQuantity(t *testing.T) {
	one := TotalCost(installation(1000, 1, "599.00"))
	three := TotalCost(installation(1000, 3, "599.00"))

	assert.True(t, three.Equal(one.Mul(decimal.NewFromInt(3))),
		"totalCost(qty=3) = %s, want 3 * %s", three, one)
	assert.Equal(t, "1797.00", three.StringFixed(2))
}

func TestCurrentLux(t *testing.T) {
	t.Run("applies optical loss and rounds", func(t *testing.T) {
		room := model.Room{Area: 10}
		insts := []model.FixtureInstallation{installation(1000, 2, "899.00")}
		// round(2000 * 0.7 / 10, 2) = 140.0
		assert.Equal(t, 140.0, CurrentLux(room, insts))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		room := model.Room{Area: 3}
		insts := []model.FixtureInstallation{installation(1000, 1, "899.00")}
		// 1000 * 0.7 / 3 = 233.333...
		assert.Equal(t, 233.33, CurrentLux(room, insts))
	})

	t.Run("sums across installations", func(t *testing.T) {
		room := model.Room{Area: 10}
		insts := []model.FixtureInstallation{
			installation(1000, 1, "899.00"),
			installation(500, 2, "599.00"),
		}
		// (1000 + 1000) * 0.7 / 10 = 140.0
		assert.Equal(t, 140.0, CurrentLux(room, insts))
	})

	t.Run("zero area yields zero", func(t *testing.T) {
		room := model.Room{Area: 0}
		insts := []model.FixtureInstallation{installation(1000, 2, "899.00")}
		assert.Equal(t, 0.0, CurrentLux(room, insts))
	})

	t.Run("no installations yields zero", func(t *testing.T) {
		room := model.Room{Area: 10}
		assert.Equal(t, 0.0, CurrentLux(room, nil))
	})

	t.Run("zero lumen installations yield zero", func(t *testing.T) {
		room := model.Room{Area: 10}
		insts := []model.FixtureInstallation{installation(0, 4, "899.00")}
		assert.Equal(t, 0.0, CurrentLux(room, insts))
	})
}

func TestIsAdequatelyLit(t *testing.T) {
	room := model.Room{Area: 10, RequiredLux: 150}

	// 2000 lm installed: currentLux = 140.0 < 150.
	under := []model.FixtureInstallation{installation(1000, 2, "899.00")}
	assert.False(t, IsAdequatelyLit(room, under))

	// 2160 lm installed: currentLux = 151.2 >= 150.
	over := []model.FixtureInstallation{installation(1080, 2, "899.00")}
	assert.True(t, IsAdequatelyLit(room, over))
}
