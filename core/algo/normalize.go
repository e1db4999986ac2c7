package algo

import "github.com/huangsam/armory/schema"

// Normalize rescales v against the observed range of its unit, so catalog
// values land in [0,1]. A degenerate range maps every value to 0. Values a
// bonus multiplier pushed past the range keep their position beyond 1.
func Normalize(v float64, r schema.UnitRange) float64 {
	if r.Degenerate() {
		return 0
	}
	return (v - r.Min) / (r.Max - r.Min)
}

// ObserveRanges folds values into per-unit min/max ranges.
func ObserveRanges(metrics []schema.Metric) map[schema.Unit]schema.UnitRange {
	ranges := make(map[schema.Unit]schema.UnitRange)
	for _, m := range metrics {
		r, ok := ranges[m.Unit]
		if !ok {
			ranges[m.Unit] = schema.UnitRange{Min: m.Value, Max: m.Value}
			continue
		}
		r.Min = min(r.Min, m.Value)
		r.Max = max(r.Max, m.Value)
		ranges[m.Unit] = r
	}
	return ranges
}
