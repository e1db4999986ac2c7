package core

import (
	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/schema"
)

// Normalization presets. The radar compares shapes so every unit is
// rescaled; bar charts keep true magnitudes except for speed.
var (
	RadarUnits = schema.NewUnitSet(schema.AllUnits...)
	BarUnits   = schema.NewUnitSet(schema.UnitSpeed)
)

// BuildRadar builds the radar dataset across every selected category.
// A target bonus can push damage past 1; the bars show the true magnitudes.
func BuildRadar(src MetricSource, bonus algo.BonusTable, sel *Selection) schema.Dataset {
	ds := BuildDataset(src, bonus, sel.weapons, sel.categories, sel.target, RadarUnits)
	ds.Kind = schema.RadarChart
	ds.Title = "Overview (" + sel.target.String() + ")"
	return ds
}

// BuildBars builds one bar dataset per selected category, in category order.
func BuildBars(src MetricSource, bonus algo.BonusTable, sel *Selection) []schema.Dataset {
	bars := make([]schema.Dataset, len(sel.categories))
	for i, c := range sel.categories {
		ds := BuildDataset(src, bonus, sel.weapons, []schema.Category{c}, sel.target, BarUnits)
		ds.Kind = schema.BarChart
		ds.Title = c.String()
		if !BarUnits.Has(c.Unit()) {
			ds.Title += " (" + c.Unit().Suffix() + ")"
		}
		bars[i] = ds
	}
	return bars
}
