package catalog

import (
	"fmt"
	"maps"

	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/schema"
)

// Repository holds the raw metric of every (weapon, category) pair and the
// observed range of every unit. It is computed once and never mutated.
type Repository struct {
	metrics map[string][]schema.Metric // indexed by category
	ranges  map[schema.Unit]schema.UnitRange
}

// NewRepository derives every metric of the catalog. A weapon without a
// profile for one of the attack kinds is rejected.
func NewRepository(c *Catalog) (*Repository, error) {
	r := &Repository{metrics: make(map[string][]schema.Metric, c.Len())}
	all := make([]schema.Metric, 0, c.Len()*len(schema.AllCategories))
	for _, w := range c.weapons {
		row := make([]schema.Metric, len(schema.AllCategories))
		for _, cat := range schema.AllCategories {
			m, err := computeMetric(w, cat)
			if err != nil {
				return nil, err
			}
			row[cat] = m
		}
		r.metrics[w.Name] = row
		all = append(all, row...)
	}
	r.ranges = algo.ObserveRanges(all)
	return r, nil
}

// MetricOf returns the metric for a catalog weapon and a category.
// Asking for a weapon or category the repository does not know is a
// programming error and panics.
func (r *Repository) MetricOf(w schema.Weapon, c schema.Category) schema.Metric {
	row, ok := r.metrics[w.Name]
	if !ok || !c.Valid() {
		panic(fmt.Sprintf("catalog: no metric for %q / %s", w.Name, c))
	}
	return row[c]
}

// RangeOf returns the observed range of a unit. Panics for a unit no metric uses.
func (r *Repository) RangeOf(u schema.Unit) schema.UnitRange {
	rg, ok := r.ranges[u]
	if !ok {
		panic(fmt.Sprintf("catalog: no range for unit %s", u))
	}
	return rg
}

// Ranges returns a copy of every unit range.
func (r *Repository) Ranges() map[schema.Unit]schema.UnitRange {
	return maps.Clone(r.ranges)
}

// computeMetric derives a single category value from a weapon's attack profile.
// Averages are the arithmetic mean over every attack kind.
func computeMetric(w schema.Weapon, c schema.Category) (schema.Metric, error) {
	if k, ok := c.Attack(); ok {
		a, ok := w.Attacks[k]
		if !ok {
			return schema.Metric{}, fmt.Errorf("catalog: weapon %q has no %s attack", w.Name, k)
		}
		return schema.Metric{Value: attackValue(a, c.Group()), Unit: c.Unit()}, nil
	}

	var sum float64
	for _, k := range schema.AllAttackKinds {
		a, ok := w.Attacks[k]
		if !ok {
			return schema.Metric{}, fmt.Errorf("catalog: weapon %q has no %s attack", w.Name, k)
		}
		sum += attackValue(a, c.Group())
	}
	return schema.Metric{Value: sum / float64(len(schema.AllAttackKinds)), Unit: c.Unit()}, nil
}

func attackValue(a schema.Attack, g schema.CategoryGroup) float64 {
	switch g {
	case schema.SpeedGroup:
		cycle := a.WindupMs + a.ComboMs
		if cycle <= 0 {
			return 0
		}
		return 1000 / cycle
	case schema.WindupGroup:
		return a.WindupMs
	case schema.RangeGroup:
		return a.RangeCm
	default: // DamageGroup
		return a.Damage
	}
}
