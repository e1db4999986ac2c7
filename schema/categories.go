package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the fixed measurement columns a user can chart.
type Category int

// All categories supported, in display order.
const (
	SpeedAverage Category = iota
	SpeedHorizontal
	SpeedOverhead
	SpeedStab
	WindupAverage
	WindupHorizontal
	WindupOverhead
	WindupStab
	RangeAverage
	RangeHorizontal
	RangeOverhead
	RangeStab
	DamageAverage
	DamageHorizontal
	DamageOverhead
	DamageStab
)

// CategoryGroup is the family a category belongs to.
type CategoryGroup int

// All category groups supported.
const (
	SpeedGroup CategoryGroup = iota
	WindupGroup
	RangeGroup
	DamageGroup
)

var groupText = [...]string{
	SpeedGroup:  "Speed",
	WindupGroup: "Windup",
	RangeGroup:  "Range",
	DamageGroup: "Damage",
}

var groupUnit = [...]Unit{
	SpeedGroup:  UnitSpeed,
	WindupGroup: UnitTime,
	RangeGroup:  UnitDistance,
	DamageGroup: UnitDamage,
}

// categoryInfo describes one row of the category table.
// A nil attack means the category averages over every attack kind.
type categoryInfo struct {
	group  CategoryGroup
	name   string
	attack *AttackKind
}

func attackRef(k AttackKind) *AttackKind { return &k }

var categoryTable = [...]categoryInfo{
	SpeedAverage:     {SpeedGroup, "Average", nil},
	SpeedHorizontal:  {SpeedGroup, "Horizontal", attackRef(Horizontal)},
	SpeedOverhead:    {SpeedGroup, "Overhead", attackRef(Overhead)},
	SpeedStab:        {SpeedGroup, "Stab", attackRef(Stab)},
	WindupAverage:    {WindupGroup, "Average", nil},
	WindupHorizontal: {WindupGroup, "Horizontal", attackRef(Horizontal)},
	WindupOverhead:   {WindupGroup, "Overhead", attackRef(Overhead)},
	WindupStab:       {WindupGroup, "Stab", attackRef(Stab)},
	RangeAverage:     {RangeGroup, "Average", nil},
	RangeHorizontal:  {RangeGroup, "Horizontal", attackRef(Horizontal)},
	RangeOverhead:    {RangeGroup, "Overhead", attackRef(Overhead)},
	RangeStab:        {RangeGroup, "Stab", attackRef(Stab)},
	DamageAverage:    {DamageGroup, "Average", nil},
	DamageHorizontal: {DamageGroup, "Horizontal", attackRef(Horizontal)},
	DamageOverhead:   {DamageGroup, "Overhead", attackRef(Overhead)},
	DamageStab:       {DamageGroup, "Stab", attackRef(Stab)},
}

// AllCategories lists every category in display order.
var AllCategories = func() []Category {
	out := make([]Category, len(categoryTable))
	for i := range categoryTable {
		out[i] = Category(i)
	}
	return out
}()

// DefaultCategories is the category set restored by a reset, in order.
var DefaultCategories = []Category{SpeedAverage, RangeAverage, DamageAverage}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryTable)
}

// String returns the canonical text, e.g. "Speed - Average".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return c.Group().String() + " - " + categoryTable[c].name
}

// Name returns the part of the canonical text after the group.
func (c Category) Name() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].name
}

// Group returns the family of the category.
func (c Category) Group() CategoryGroup {
	return categoryTable[c].group
}

// Unit returns the measurement unit of the category.
func (c Category) Unit() Unit {
	return groupUnit[categoryTable[c].group]
}

// HasBonus reports whether target bonuses apply to the category.
func (c Category) HasBonus() bool {
	return c.Group() == DamageGroup
}

// Attack returns the attack kind the category measures, or false for averages.
func (c Category) Attack() (AttackKind, bool) {
	k := categoryTable[c].attack
	if k == nil {
		return 0, false
	}
	return *k, true
}

// MarshalJSON writes the canonical text.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON reads the canonical text.
func (c *Category) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "category", ParseCategory, c)
}

// ParseCategory resolves the canonical text of a category, ignoring case and
// surrounding whitespace around the separator.
func ParseCategory(s string) (Category, bool) {
	group, name, ok := strings.Cut(s, "-")
	if !ok {
		return 0, false
	}
	group, name = strings.TrimSpace(group), strings.TrimSpace(name)
	for i, info := range categoryTable {
		if strings.EqualFold(groupText[info.group], group) && strings.EqualFold(info.name, name) {
			return Category(i), true
		}
	}
	return 0, false
}

// String returns the display text of the group.
func (g CategoryGroup) String() string {
	if g < 0 || int(g) >= len(groupText) {
		return fmt.Sprintf("CategoryGroup(%d)", int(g))
	}
	return groupText[g]
}
