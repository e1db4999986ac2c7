package core

import (
	"slices"

	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/internal/catalog"
	"github.com/huangsam/armory/schema"
)

// Selection is the single source of truth for what a user is comparing:
// an ordered set of weapons, an ordered set of categories and a target.
// Every member is drawn from the catalog or the category enumeration.
type Selection struct {
	catalog    *catalog.Catalog
	weapons    []schema.Weapon
	categories []schema.Category
	target     schema.Target
}

// NewSelection returns an empty selection over a catalog with the default target.
func NewSelection(c *catalog.Catalog) *Selection {
	return &Selection{catalog: c, target: schema.DefaultTarget}
}

// Catalog returns the catalog the selection draws from.
func (s *Selection) Catalog() *catalog.Catalog {
	return s.catalog
}

// Weapons returns the selected weapons in selection order.
func (s *Selection) Weapons() []schema.Weapon {
	return slices.Clone(s.weapons)
}

// WeaponNames returns the names of the selected weapons in selection order.
func (s *Selection) WeaponNames() []string {
	names := make([]string, len(s.weapons))
	for i, w := range s.weapons {
		names[i] = w.Name
	}
	return names
}

// Categories returns the selected categories in selection order.
func (s *Selection) Categories() []schema.Category {
	return slices.Clone(s.categories)
}

// Target returns the selected target.
func (s *Selection) Target() schema.Target {
	return s.target
}

// HasWeapon reports whether a weapon with this name is selected.
func (s *Selection) HasWeapon(name string) bool {
	return s.weaponIndex(name) >= 0
}

// HasCategory reports whether c is selected.
func (s *Selection) HasCategory(c schema.Category) bool {
	return slices.Contains(s.categories, c)
}

func (s *Selection) weaponIndex(name string) int {
	return slices.IndexFunc(s.weapons, func(w schema.Weapon) bool { return w.Name == name })
}

// AddWeapon appends a catalog weapon. It is a no-op when the name is already
// selected or not in the catalog. Reports whether the selection changed.
func (s *Selection) AddWeapon(name string) bool {
	if s.HasWeapon(name) {
		return false
	}
	w, ok := s.catalog.ByName(name)
	if !ok {
		return false
	}
	s.weapons = append(s.weapons, w)
	return true
}

// RemoveWeapon drops a weapon, keeping the order of the rest.
func (s *Selection) RemoveWeapon(name string) bool {
	i := s.weaponIndex(name)
	if i < 0 {
		return false
	}
	s.weapons = slices.Delete(s.weapons, i, i+1)
	return true
}

// ClearWeapons empties the weapon set.
func (s *Selection) ClearWeapons() {
	s.weapons = nil
}

// SetCategory enables or disables a category. Enabling appends it at the
// end. Values outside the enumeration are rejected.
func (s *Selection) SetCategory(c schema.Category, enabled bool) bool {
	if !c.Valid() {
		return false
	}
	i := slices.Index(s.categories, c)
	switch {
	case enabled && i < 0:
		s.categories = append(s.categories, c)
		return true
	case !enabled && i >= 0:
		s.categories = slices.Delete(s.categories, i, i+1)
		return true
	}
	return false
}

// SetTarget replaces the target. Values outside the enumeration are rejected.
func (s *Selection) SetTarget(t schema.Target) bool {
	if !t.Valid() {
		return false
	}
	s.target = t
	return true
}

// ResetCategories restores exactly the default categories, in order.
func (s *Selection) ResetCategories() {
	s.categories = slices.Clone(schema.DefaultCategories)
}

// SelectAll replaces the weapon set with every catalog weapon in catalog order.
func (s *Selection) SelectAll() {
	s.weapons = s.catalog.All()
}

// SelectRandom replaces the weapon set with the first n weapons of a uniform
// shuffle of the catalog. n is clamped to [0, catalog size].
func (s *Selection) SelectRandom(n int, shuffler algo.Shuffler) {
	idx := algo.Permutation(shuffler, s.catalog.Len(), n)
	weapons := make([]schema.Weapon, len(idx))
	for i, j := range idx {
		weapons[i] = s.catalog.At(j)
	}
	s.weapons = weapons
}

// Clone returns an independent copy sharing the same catalog.
func (s *Selection) Clone() *Selection {
	return &Selection{
		catalog:    s.catalog,
		weapons:    slices.Clone(s.weapons),
		categories: slices.Clone(s.categories),
		target:     s.target,
	}
}

// Equal reports whether two selections hold the same members in the same order.
func (s *Selection) Equal(o *Selection) bool {
	return s.target == o.target &&
		slices.Equal(s.WeaponNames(), o.WeaponNames()) &&
		slices.Equal(s.categories, o.categories)
}
