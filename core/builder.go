package core

import (
	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/schema"
)

// MetricSource provides raw metrics and per-unit ranges. Both lookups are
// total over the catalog; a miss is a contract violation.
type MetricSource interface {
	MetricOf(w schema.Weapon, c schema.Category) schema.Metric
	RangeOf(u schema.Unit) schema.UnitRange
}

// BuildDataset computes one chart dataset. Labels follow the category order
// and there is one series per weapon in weapon order. Bonus-eligible values
// are scaled by the target multiplier, then values whose unit is in
// normalize are rescaled into [0,1]; the rest pass through.
func BuildDataset(
	src MetricSource,
	bonus algo.BonusTable,
	weapons []schema.Weapon,
	categories []schema.Category,
	target schema.Target,
	normalize schema.UnitSet,
) schema.Dataset {
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.String()
	}

	series := make([]schema.Series, len(weapons))
	for i, w := range weapons {
		values := make([]float64, len(categories))
		for j, c := range categories {
			m := src.MetricOf(w, c)
			raw := m.Value
			if c.HasBonus() {
				raw *= bonus.Lookup(target, w.DamageType)
			}
			if normalize.Has(m.Unit) {
				raw = algo.Normalize(raw, src.RangeOf(m.Unit))
			}
			values[j] = raw
		}
		series[i] = schema.Series{Label: w.Name, Values: values}
	}

	return schema.Dataset{Labels: labels, Series: series}
}
