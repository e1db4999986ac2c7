// Package catalog provides the weapon catalog and the metrics derived from it.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/armory/schema"
)

// ErrEmptyCatalog is returned when a catalog has no weapons.
var ErrEmptyCatalog = errors.New("catalog: no weapons")

// Catalog is an immutable ordered list of weapons with unique names.
type Catalog struct {
	weapons []schema.Weapon
	index   map[string]int
}

// New builds a catalog, rejecting blank, padded and duplicate names.
func New(weapons []schema.Weapon) (*Catalog, error) {
	if len(weapons) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		weapons: make([]schema.Weapon, len(weapons)),
		index:   make(map[string]int, len(weapons)),
	}
	for i, w := range weapons {
		if strings.TrimSpace(w.Name) == "" {
			return nil, fmt.Errorf("catalog: weapon #%d has no name", i+1)
		}
		if strings.TrimSpace(w.Name) != w.Name {
			return nil, fmt.Errorf("catalog: weapon %q has surrounding spaces", w.Name)
		}
		if _, dup := c.index[w.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate weapon %q", w.Name)
		}
		if !w.DamageType.Valid() {
			return nil, fmt.Errorf("catalog: weapon %q: invalid damage type", w.Name)
		}
		c.weapons[i] = w
		c.index[w.Name] = i
	}
	return c, nil
}

// All returns a copy of every weapon in catalog order.
func (c *Catalog) All() []schema.Weapon {
	out := make([]schema.Weapon, len(c.weapons))
	copy(out, c.weapons)
	return out
}

// Names returns every weapon name in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.weapons))
	for i, w := range c.weapons {
		out[i] = w.Name
	}
	return out
}

// Len returns the number of weapons.
func (c *Catalog) Len() int {
	return len(c.weapons)
}

// At returns the weapon at catalog position i.
func (c *Catalog) At(i int) schema.Weapon {
	return c.weapons[i]
}

// ByName looks a weapon up by its exact display name.
func (c *Catalog) ByName(name string) (schema.Weapon, bool) {
	i, ok := c.index[name]
	if !ok {
		return schema.Weapon{}, false
	}
	return c.weapons[i], true
}

// Contains reports whether a weapon with this name is in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}
