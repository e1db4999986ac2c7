package core

import (
	"testing"

	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDatasetConcreteScenario(t *testing.T) {
	c, repo := abcFixture(t)
	a, _ := c.ByName("A")
	cw, _ := c.ByName("C")

	require.Equal(t, schema.UnitRange{Min: 10, Max: 30}, repo.RangeOf(schema.UnitDamage))

	ds := BuildDataset(repo, algo.GetDefaultBonuses(),
		[]schema.Weapon{a, cw},
		[]schema.Category{schema.DamageAverage},
		schema.TargetAverage,
		schema.NewUnitSet(schema.UnitDamage),
	)

	assert.Equal(t, []string{"Damage - Average"}, ds.Labels)
	require.Len(t, ds.Series, 2)
	assert.Equal(t, "A", ds.Series[0].Label)
	assert.Equal(t, []float64{0.0}, ds.Series[0].Values)
	assert.Equal(t, "C", ds.Series[1].Label)
	assert.Equal(t, []float64{1.0}, ds.Series[1].Values)
}

func TestBuildDatasetAlignment(t *testing.T) {
	c, repo := abcFixture(t)
	cats := []schema.Category{schema.RangeAverage, schema.SpeedStab, schema.DamageOverhead}

	ds := BuildDataset(repo, nil, c.All(), cats, schema.TargetAverage, nil)

	assert.Equal(t, []string{"Range - Average", "Speed - Stab", "Damage - Overhead"}, ds.Labels)
	require.Len(t, ds.Series, 3)
	for _, s := range ds.Series {
		assert.Len(t, s.Values, len(cats))
	}
	// nothing normalized: raw values pass through
	assert.Equal(t, 150.0, ds.Series[1].Values[0])
	assert.InDelta(t, 1.0, ds.Series[1].Values[1], 1e-9)
	assert.Equal(t, 20.0, ds.Series[1].Values[2])
}

func TestBuildDatasetNormalizationBounds(t *testing.T) {
	c, repo := builtinFixture(t)
	ds := BuildDataset(repo, algo.GetDefaultBonuses(), c.All(), schema.AllCategories, schema.TargetAverage, RadarUnits)

	for _, s := range ds.Series {
		for j, v := range s.Values {
			assert.GreaterOrEqual(t, v, 0.0, "%s / %s", s.Label, ds.Labels[j])
			assert.LessOrEqual(t, v, 1.0, "%s / %s", s.Label, ds.Labels[j])
		}
	}
}

func TestBuildDatasetBonus(t *testing.T) {
	c, repo := abcFixture(t)
	bonus := algo.BonusTable{
		schema.TargetHeavy: {schema.Cut: 2},
	}
	cats := []schema.Category{schema.DamageAverage, schema.RangeAverage}

	tests := []struct {
		name     string
		weapon   string
		target   schema.Target
		expected []float64
	}{
		{"bonus applies to damage only", "A", schema.TargetHeavy, []float64{20, 100}},
		{"missing damage type is identity", "B", schema.TargetHeavy, []float64{20, 150}},
		{"missing target is identity", "A", schema.TargetLight, []float64{10, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := c.ByName(tt.weapon)
			require.True(t, ok)
			ds := BuildDataset(repo, bonus, []schema.Weapon{w}, cats, tt.target, nil)
			assert.Equal(t, tt.expected, ds.Series[0].Values)
		})
	}
}

func TestBuildDatasetBonusBeyondRange(t *testing.T) {
	c, repo := abcFixture(t)
	bonus := algo.BonusTable{
		schema.TargetHeavy: {schema.Pierce: 2, schema.Blunt: 2},
	}

	ds := BuildDataset(repo, bonus, c.All(),
		[]schema.Category{schema.DamageAverage},
		schema.TargetHeavy,
		RadarUnits,
	)

	require.Len(t, ds.Series, 3)
	assert.InDelta(t, 0.0, ds.Series[0].Values[0], 1e-9)
	assert.InDelta(t, 1.5, ds.Series[1].Values[0], 1e-9)
	assert.InDelta(t, 2.5, ds.Series[2].Values[0], 1e-9)
}

func TestBuildDatasetDegenerateRange(t *testing.T) {
	src := stubSource{
		metrics: map[string]map[schema.Category]schema.Metric{
			"X": {schema.DamageAverage: {Value: 42, Unit: schema.UnitDamage}},
			"Y": {schema.DamageAverage: {Value: 42, Unit: schema.UnitDamage}},
		},
		ranges: map[schema.Unit]schema.UnitRange{schema.UnitDamage: {Min: 42, Max: 42}},
	}
	ds := BuildDataset(src, nil,
		[]schema.Weapon{{Name: "X"}, {Name: "Y"}},
		[]schema.Category{schema.DamageAverage},
		schema.TargetAverage,
		schema.NewUnitSet(schema.UnitDamage),
	)
	assert.Equal(t, []float64{0}, ds.Series[0].Values)
	assert.Equal(t, []float64{0}, ds.Series[1].Values)
}

func TestBuildDatasetEmpty(t *testing.T) {
	_, repo := abcFixture(t)
	ds := BuildDataset(repo, nil, nil, nil, schema.TargetAverage, RadarUnits)
	assert.Empty(t, ds.Labels)
	assert.Empty(t, ds.Series)
}

func TestBuildDatasetDeterministic(t *testing.T) {
	c, repo := builtinFixture(t)
	bonus := algo.GetDefaultBonuses()
	a := BuildDataset(repo, bonus, c.All(), schema.AllCategories, schema.TargetLight, BarUnits)
	b := BuildDataset(repo, bonus, c.All(), schema.AllCategories, schema.TargetLight, BarUnits)
	assert.Equal(t, a, b)
}

func TestBuildRadarAndBars(t *testing.T) {
	c, repo := abcFixture(t)
	sel := NewSelection(c)
	sel.AddWeapon("A")
	sel.AddWeapon("C")
	sel.SetCategory(schema.SpeedAverage, true)
	sel.SetCategory(schema.DamageAverage, true)

	radar := BuildRadar(repo, nil, sel)
	assert.Equal(t, schema.RadarChart, radar.Kind)
	assert.Equal(t, "Overview (Average)", radar.Title)
	assert.Equal(t, []string{"Speed - Average", "Damage - Average"}, radar.Labels)
	// A: speed 2, damage 10; C: speed 2, damage 30; speed range is [1, 2]
	assert.Equal(t, []float64{1, 0}, radar.Series[0].Values)
	assert.Equal(t, []float64{1, 1}, radar.Series[1].Values)

	bars := BuildBars(repo, nil, sel)
	require.Len(t, bars, 2)
	assert.Equal(t, schema.BarChart, bars[0].Kind)
	assert.Equal(t, "Speed - Average", bars[0].Title)
	assert.Equal(t, []float64{1}, bars[0].Series[0].Values)
	assert.Equal(t, "Damage - Average (hp)", bars[1].Title)
	assert.Equal(t, []float64{10}, bars[1].Series[0].Values, "bars keep true damage")
	assert.Equal(t, []float64{30}, bars[1].Series[1].Values)
}

func BenchmarkBuildDataset(b *testing.B) {
	c, repo := builtinFixture(b)
	bonus := algo.GetDefaultBonuses()
	weapons := c.All()
	for b.Loop() {
		BuildDataset(repo, bonus, weapons, schema.AllCategories, schema.TargetHeavy, RadarUnits)
	}
}
