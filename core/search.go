package core

import (
	"strings"

	"github.com/huangsam/armory/internal/catalog"
	"github.com/huangsam/armory/schema"
)

// Search returns the catalog weapons that are not yet selected and whose
// name contains query, ignoring case. An empty query matches everything.
// Results are in catalog order.
func Search(c *catalog.Catalog, query string, sel *Selection) []schema.Weapon {
	query = strings.ToLower(query)
	var out []schema.Weapon
	for _, w := range c.All() {
		if query != "" && !strings.Contains(strings.ToLower(w.Name), query) {
			continue
		}
		if sel != nil && sel.HasWeapon(w.Name) {
			continue
		}
		out = append(out, w)
	}
	return out
}
