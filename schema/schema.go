// Package schema has the models, enumerations and lookup tables shared by all parts of armory.
package schema

// Attack holds the raw timings and reach of a single attack kind.
type Attack struct {
	WindupMs float64 `json:"windup_ms"` // Time from input to the release of the attack
	ComboMs  float64 `json:"combo_ms"`  // Time until the next attack can be chained
	RangeCm  float64 `json:"range_cm"`  // Reach of the attack
	Damage   float64 `json:"damage"`    // Base damage before any target bonus
}

// Weapon is a single selectable item from the catalog.
// Its name is the identity; two weapons with the same name are the same weapon.
type Weapon struct {
	Name       string                `json:"name"`
	DamageType DamageType            `json:"damage_type"`
	Attacks    map[AttackKind]Attack `json:"attacks,omitempty"`
}

// Metric is a raw value for one weapon and category, together with its unit.
type Metric struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// UnitRange is the observed minimum and maximum value for a unit across the whole catalog.
// Min == Max is a valid degenerate range.
type UnitRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Degenerate reports whether the range collapses to a single value.
func (r UnitRange) Degenerate() bool {
	return r.Max == r.Min
}

// UnitSet is the set of units that a chart normalizes.
type UnitSet map[Unit]struct{}

// NewUnitSet returns a set holding the given units.
func NewUnitSet(units ...Unit) UnitSet {
	set := make(UnitSet, len(units))
	for _, u := range units {
		set[u] = struct{}{}
	}
	return set
}

// Has reports whether u is in the set. A nil set holds nothing.
func (s UnitSet) Has(u Unit) bool {
	_, ok := s[u]
	return ok
}
