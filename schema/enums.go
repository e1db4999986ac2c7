package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Closed enumerations. Internal logic only compares the typed values;
// the text tables below are used at the serialization boundary.
type (
	// DamageType classifies a weapon for bonus lookup.
	DamageType int

	// Unit is the measurement scale a category is expressed in.
	Unit int

	// Target is the armor profile that bonus-eligible categories are adjusted against.
	Target int

	// AttackKind is one of the attacks every weapon has a profile for.
	AttackKind int
)

// All damage types supported.
const (
	Cut DamageType = iota
	Blunt
	Pierce
	Chop
)

// All units supported.
const (
	UnitSpeed Unit = iota
	UnitTime
	UnitDistance
	UnitDamage
)

// All targets supported.
const (
	TargetAverage Target = iota // default
	TargetLight
	TargetMedium
	TargetHeavy
)

// All attack kinds supported.
const (
	Horizontal AttackKind = iota
	Overhead
	Stab
)

var damageTypeText = [...]string{
	Cut:    "cut",
	Blunt:  "blunt",
	Pierce: "pierce",
	Chop:   "chop",
}

var unitText = [...]string{
	UnitSpeed:    "speed",
	UnitTime:     "time",
	UnitDistance: "distance",
	UnitDamage:   "damage",
}

// unitSuffix is the short suffix shown next to raw values.
var unitSuffix = [...]string{
	UnitSpeed:    "atk/s",
	UnitTime:     "ms",
	UnitDistance: "cm",
	UnitDamage:   "hp",
}

var targetText = [...]string{
	TargetAverage: "Average",
	TargetLight:   "Light",
	TargetMedium:  "Medium",
	TargetHeavy:   "Heavy",
}

var attackKindText = [...]string{
	Horizontal: "horizontal",
	Overhead:   "overhead",
	Stab:       "stab",
}

// AllDamageTypes lists every damage type in declaration order.
var AllDamageTypes = []DamageType{Cut, Blunt, Pierce, Chop}

// AllUnits lists every unit in declaration order.
var AllUnits = []Unit{UnitSpeed, UnitTime, UnitDistance, UnitDamage}

// AllTargets lists every target in declaration order.
var AllTargets = []Target{TargetAverage, TargetLight, TargetMedium, TargetHeavy}

// AllAttackKinds lists every attack kind in declaration order.
var AllAttackKinds = []AttackKind{Horizontal, Overhead, Stab}

// DefaultTarget is the target used when nothing else is selected.
const DefaultTarget = TargetAverage

// parseText looks up s in a text table, ignoring case.
func parseText(table []string, s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, text := range table {
		if strings.EqualFold(text, s) {
			return i, true
		}
	}
	return 0, false
}

// String returns the canonical text of the damage type.
func (d DamageType) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DamageType(%d)", int(d))
	}
	return damageTypeText[d]
}

// Valid reports whether d is a member of the enumeration.
func (d DamageType) Valid() bool {
	return d >= 0 && int(d) < len(damageTypeText)
}

// ParseDamageType resolves the canonical text of a damage type.
func ParseDamageType(s string) (DamageType, bool) {
	i, ok := parseText(damageTypeText[:], s)
	return DamageType(i), ok
}

// MarshalJSON writes the canonical text.
func (d DamageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads the canonical text.
func (d *DamageType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "damage type", ParseDamageType, d)
}

// String returns the canonical text of the unit.
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitText[u]
}

// Suffix returns the short display suffix of the unit.
func (u Unit) Suffix() string {
	if !u.Valid() {
		return ""
	}
	return unitSuffix[u]
}

// Valid reports whether u is a member of the enumeration.
func (u Unit) Valid() bool {
	return u >= 0 && int(u) < len(unitText)
}

// ParseUnit resolves the canonical text of a unit.
func ParseUnit(s string) (Unit, bool) {
	i, ok := parseText(unitText[:], s)
	return Unit(i), ok
}

// MarshalJSON writes the canonical text.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON reads the canonical text.
func (u *Unit) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "unit", ParseUnit, u)
}

// String returns the canonical text of the target.
func (t Target) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Target(%d)", int(t))
	}
	return targetText[t]
}

// Valid reports whether t is a member of the enumeration.
func (t Target) Valid() bool {
	return t >= 0 && int(t) < len(targetText)
}

// ParseTarget resolves the canonical text of a target.
func ParseTarget(s string) (Target, bool) {
	i, ok := parseText(targetText[:], s)
	return Target(i), ok
}

// MarshalJSON writes the canonical text.
func (t Target) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON reads the canonical text.
func (t *Target) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "target", ParseTarget, t)
}

// String returns the canonical text of the attack kind.
func (k AttackKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("AttackKind(%d)", int(k))
	}
	return attackKindText[k]
}

// Valid reports whether k is a member of the enumeration.
func (k AttackKind) Valid() bool {
	return k >= 0 && int(k) < len(attackKindText)
}

// ParseAttackKind resolves the canonical text of an attack kind.
func ParseAttackKind(s string) (AttackKind, bool) {
	i, ok := parseText(attackKindText[:], s)
	return AttackKind(i), ok
}

// MarshalText writes the canonical text so attack kinds can key JSON objects.
func (k AttackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// unmarshalEnum decodes a JSON string through parse into dst.
func unmarshalEnum[T ~int](data []byte, what string, parse func(string) (T, bool), dst *T) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	v, ok := parse(text)
	if !ok {
		return fmt.Errorf("unknown %s %q", what, text)
	}
	*dst = v
	return nil
}
