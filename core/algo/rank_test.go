package algo

import (
	"testing"

	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/assert"
)

func TestRankSeries(t *testing.T) {
	ds := schema.Dataset{
		Kind:   schema.RadarChart,
		Labels: []string{"Speed - Average", "Range - Average"},
		Series: []schema.Series{
			{Label: "Dagger", Values: []float64{0.2, 0.2}},    // Low
			{Label: "Longsword", Values: []float64{1.0, 0.8}}, // Top
			{Label: "Mace", Values: []float64{0.6, 0.6}},      // High
			{Label: "Axe", Values: []float64{0.6, 0.6}},       // High, tie keeps order
		},
	}

	ranked := RankSeries(ds, 0)

	assert.Len(t, ranked, 4)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Top", ranked[0].Label)
	assert.Equal(t, "Longsword", ranked[0].Weapon)
	assert.InDelta(t, 0.9, ranked[0].Score, 1e-9)

	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "Mace", ranked[1].Weapon)
	assert.Equal(t, "High", ranked[1].Label)

	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, "Axe", ranked[2].Weapon)

	assert.Equal(t, 4, ranked[3].Rank)
	assert.Equal(t, "Low", ranked[3].Label)
	assert.Equal(t, "Dagger", ranked[3].Weapon)
}

func TestRankSeriesLimit(t *testing.T) {
	ds := schema.Dataset{Series: []schema.Series{
		{Label: "a", Values: []float64{0.1}},
		{Label: "b", Values: []float64{0.9}},
		{Label: "c", Values: []float64{0.5}},
	}}
	ranked := RankSeries(ds, 2)
	assert.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Weapon)
	assert.Equal(t, "c", ranked[1].Weapon)
}

func TestRankSeriesEmpty(t *testing.T) {
	assert.Empty(t, RankSeries(schema.Dataset{}, 5))
	ranked := RankSeries(schema.Dataset{Series: []schema.Series{{Label: "Dagger"}}}, 0)
	assert.Equal(t, 0.0, ranked[0].Score)
}
