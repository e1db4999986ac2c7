package algo

import (
	"maps"

	"github.com/huangsam/armory/schema"
)

// BonusTable maps a target and damage type to a damage multiplier.
// A missing entry is the identity multiplier.
type BonusTable map[schema.Target]map[schema.DamageType]float64

// GetDefaultBonuses returns the built-in bonus table.
func GetDefaultBonuses() BonusTable {
	return BonusTable{
		schema.TargetLight: {
			schema.Cut:   1.15,
			schema.Chop:  1.1,
			schema.Blunt: 0.9,
		},
		schema.TargetMedium: {
			schema.Pierce: 1.1,
			schema.Chop:   1.05,
		},
		schema.TargetHeavy: {
			schema.Blunt:  1.25,
			schema.Pierce: 1.1,
			schema.Cut:    0.8,
		},
	}
}

// Lookup returns the multiplier for a target and damage type, or 1 when absent.
func (b BonusTable) Lookup(target schema.Target, dt schema.DamageType) float64 {
	if byType, ok := b[target]; ok {
		if v, ok := byType[dt]; ok {
			return v
		}
	}
	return 1
}

// Merge returns a copy of b with every entry of overrides applied on top.
func (b BonusTable) Merge(overrides BonusTable) BonusTable {
	out := make(BonusTable, len(b))
	for target, byType := range b {
		out[target] = maps.Clone(byType)
	}
	for target, byType := range overrides {
		if out[target] == nil {
			out[target] = make(map[schema.DamageType]float64, len(byType))
		}
		maps.Copy(out[target], byType)
	}
	return out
}
