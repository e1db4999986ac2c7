package catalog

import (
	"testing"

	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository(t *testing.T) {
	c, err := New([]schema.Weapon{
		{Name: "Quick", DamageType: schema.Pierce, Attacks: profile(200, 300, 60, 20)},
		{Name: "Slow", DamageType: schema.Blunt, Attacks: profile(600, 400, 120, 60)},
	})
	require.NoError(t, err)

	repo, err := NewRepository(c)
	require.NoError(t, err)

	quick, _ := c.ByName("Quick")
	slow, _ := c.ByName("Slow")

	tests := []struct {
		name     string
		weapon   schema.Weapon
		category schema.Category
		expected schema.Metric
	}{
		{"speed average", quick, schema.SpeedAverage, schema.Metric{Value: 2, Unit: schema.UnitSpeed}},
		{"speed stab", slow, schema.SpeedStab, schema.Metric{Value: 1, Unit: schema.UnitSpeed}},
		{"windup", slow, schema.WindupOverhead, schema.Metric{Value: 600, Unit: schema.UnitTime}},
		{"range", quick, schema.RangeAverage, schema.Metric{Value: 60, Unit: schema.UnitDistance}},
		{"damage raw", slow, schema.DamageHorizontal, schema.Metric{Value: 60, Unit: schema.UnitDamage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.MetricOf(tt.weapon, tt.category)
			assert.Equal(t, tt.expected.Unit, got.Unit)
			assert.InDelta(t, tt.expected.Value, got.Value, 1e-9)
		})
	}

	assert.Equal(t, schema.UnitRange{Min: 1, Max: 2}, repo.RangeOf(schema.UnitSpeed))
	assert.Equal(t, schema.UnitRange{Min: 60, Max: 120}, repo.RangeOf(schema.UnitDistance))
	assert.Equal(t, schema.UnitRange{Min: 200, Max: 600}, repo.RangeOf(schema.UnitTime))
	assert.Len(t, repo.Ranges(), 4)
}

func TestRepositoryAverages(t *testing.T) {
	c, err := New([]schema.Weapon{{
		Name:       "Mixed",
		DamageType: schema.Cut,
		Attacks: map[schema.AttackKind]schema.Attack{
			schema.Horizontal: {WindupMs: 100, ComboMs: 400, RangeCm: 90, Damage: 30},
			schema.Overhead:   {WindupMs: 200, ComboMs: 800, RangeCm: 60, Damage: 60},
			schema.Stab:       {WindupMs: 300, ComboMs: 200, RangeCm: 120, Damage: 0},
		},
	}})
	require.NoError(t, err)
	repo, err := NewRepository(c)
	require.NoError(t, err)

	w, _ := c.ByName("Mixed")
	// speeds are 2, 1 and 2 attacks per second
	assert.InDelta(t, 5.0/3.0, repo.MetricOf(w, schema.SpeedAverage).Value, 1e-9)
	assert.InDelta(t, 200, repo.MetricOf(w, schema.WindupAverage).Value, 1e-9)
	assert.InDelta(t, 90, repo.MetricOf(w, schema.RangeAverage).Value, 1e-9)
	assert.InDelta(t, 30, repo.MetricOf(w, schema.DamageAverage).Value, 1e-9)
}

func TestRepositoryMissingAttack(t *testing.T) {
	c, err := New([]schema.Weapon{{
		Name: "Broken",
		Attacks: map[schema.AttackKind]schema.Attack{
			schema.Horizontal: {WindupMs: 100, ComboMs: 100},
		},
	}})
	require.NoError(t, err)
	_, err = NewRepository(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestRepositoryDegenerateRange(t *testing.T) {
	c, err := New([]schema.Weapon{
		{Name: "A", Attacks: profile(500, 500, 100, 40)},
		{Name: "B", Attacks: profile(500, 500, 100, 40)},
	})
	require.NoError(t, err)
	repo, err := NewRepository(c)
	require.NoError(t, err)
	assert.True(t, repo.RangeOf(schema.UnitDamage).Degenerate())
}

func TestRepositoryContractViolation(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	repo, err := NewRepository(c)
	require.NoError(t, err)

	assert.Panics(t, func() {
		repo.MetricOf(schema.Weapon{Name: "Lightsaber"}, schema.SpeedAverage)
	})
	assert.Panics(t, func() {
		repo.MetricOf(c.At(0), schema.Category(99))
	})
	assert.Panics(t, func() {
		repo.RangeOf(schema.Unit(42))
	})
}

func TestBuiltinRepository(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	repo, err := NewRepository(c)
	require.NoError(t, err)
	for _, u := range schema.AllUnits {
		r := repo.RangeOf(u)
		assert.Less(t, r.Min, r.Max, u.String())
	}
}
