package algo

import (
	"sort"

	"github.com/huangsam/armory/schema"
)

// RankSeries ranks the weapons of a dataset by the mean of their values in
// descending order and returns the top 'limit' rows. A limit of zero or less
// returns every row. Ties keep their dataset order.
func RankSeries(ds schema.Dataset, limit int) []schema.RankedWeapon {
	ranked := make([]schema.RankedWeapon, len(ds.Series))
	for i, s := range ds.Series {
		ranked[i] = schema.RankedWeapon{Weapon: s.Label, Score: mean(s.Values)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Label = schema.GetPlainLabel(ranked[i].Score)
	}
	return ranked
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
