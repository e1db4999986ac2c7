package core

import (
	"testing"

	"github.com/huangsam/armory/internal/catalog"
	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/require"
)

// weapon returns a weapon whose three attacks share the same profile.
func weapon(name string, dt schema.DamageType, windup, combo, reach, damage float64) schema.Weapon {
	a := schema.Attack{WindupMs: windup, ComboMs: combo, RangeCm: reach, Damage: damage}
	return schema.Weapon{
		Name:       name,
		DamageType: dt,
		Attacks: map[schema.AttackKind]schema.Attack{
			schema.Horizontal: a,
			schema.Overhead:   a,
			schema.Stab:       a,
		},
	}
}

// abcFixture is a three weapon catalog with damage 10, 20 and 30.
func abcFixture(t *testing.T) (*catalog.Catalog, *catalog.Repository) {
	t.Helper()
	c, err := catalog.New([]schema.Weapon{
		weapon("A", schema.Cut, 200, 300, 100, 10),
		weapon("B", schema.Blunt, 400, 600, 150, 20),
		weapon("C", schema.Pierce, 300, 200, 200, 30),
	})
	require.NoError(t, err)
	repo, err := catalog.NewRepository(c)
	require.NoError(t, err)
	return c, repo
}

// builtinFixture returns the embedded catalog and its repository.
func builtinFixture(t testing.TB) (*catalog.Catalog, *catalog.Repository) {
	t.Helper()
	c, err := catalog.Builtin()
	require.NoError(t, err)
	repo, err := catalog.NewRepository(c)
	require.NoError(t, err)
	return c, repo
}

// fixedShuffler leaves the order untouched so random picks are predictable.
type fixedShuffler struct{}

func (fixedShuffler) Shuffle(int, func(i, j int)) {}

// reverseShuffler reverses the order.
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// stubSource is a metric source backed by literal tables.
type stubSource struct {
	metrics map[string]map[schema.Category]schema.Metric
	ranges  map[schema.Unit]schema.UnitRange
}

func (s stubSource) MetricOf(w schema.Weapon, c schema.Category) schema.Metric {
	return s.metrics[w.Name][c]
}

func (s stubSource) RangeOf(u schema.Unit) schema.UnitRange {
	return s.ranges[u]
}
