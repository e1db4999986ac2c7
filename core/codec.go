package core

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/internal/catalog"
	"github.com/huangsam/armory/schema"
)

// Share query keys.
const (
	KeyTarget   = "target"
	KeyWeapon   = "weapon"
	KeyCategory = "category"
)

// Encode serializes a selection: one target pair, then one weapon pair per
// selected weapon, then one category pair per selected category.
func Encode(sel *Selection) []schema.Pair {
	pairs := make([]schema.Pair, 0, 1+len(sel.weapons)+len(sel.categories))
	pairs = append(pairs, schema.Pair{Key: KeyTarget, Value: sel.target.String()})
	for _, w := range sel.weapons {
		pairs = append(pairs, schema.Pair{Key: KeyWeapon, Value: w.Name})
	}
	for _, c := range sel.categories {
		pairs = append(pairs, schema.Pair{Key: KeyCategory, Value: c.String()})
	}
	return pairs
}

// Decode rebuilds a selection from pairs. Unknown keys, unknown weapons,
// unknown categories and unknown targets are skipped. Only the first target
// pair is considered.
func Decode(c *catalog.Catalog, pairs []schema.Pair) *Selection {
	sel := NewSelection(c)
	targetSeen := false
	for _, p := range pairs {
		switch p.Key {
		case KeyTarget:
			if targetSeen {
				continue
			}
			targetSeen = true
			if t, ok := schema.ParseTarget(p.Value); ok {
				sel.SetTarget(t)
			}
		case KeyWeapon:
			sel.AddWeapon(p.Value)
		case KeyCategory:
			if cat, ok := schema.ParseCategory(p.Value); ok {
				sel.SetCategory(cat, true)
			}
		}
	}
	return sel
}

// Restore decodes pairs and applies the load-time fallbacks: when no weapon
// survived, n random weapons are picked; when no category survived, the
// default categories are restored.
func Restore(c *catalog.Catalog, pairs []schema.Pair, n int, shuffler algo.Shuffler) *Selection {
	sel := Decode(c, pairs)
	if len(sel.weapons) == 0 {
		sel.SelectRandom(n, shuffler)
	}
	if len(sel.categories) == 0 {
		sel.ResetCategories()
	}
	return sel
}

// EncodeQuery flattens pairs into a form-encoded query string, keeping order.
func EncodeQuery(pairs []schema.Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// ParseQuery splits a form-encoded query string into ordered pairs. A leading
// '?' is ignored and pairs that fail to unescape are skipped.
func ParseQuery(query string) []schema.Pair {
	query = strings.TrimPrefix(query, "?")
	var pairs []schema.Pair
	for part := range strings.SplitSeq(query, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		pairs = append(pairs, schema.Pair{Key: key, Value: value})
	}
	return pairs
}

// ShareLink returns baseURL with the encoded selection as its query.
func ShareLink(baseURL string, sel *Selection) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	u.RawQuery = EncodeQuery(Encode(sel))
	u.Fragment = ""
	return u.String(), nil
}

// QueryOf returns the query part of a full share link, or the input itself
// when it is already a bare query.
func QueryOf(linkOrQuery string) string {
	s := strings.TrimSpace(linkOrQuery)
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		return u.RawQuery
	}
	if _, after, ok := strings.Cut(s, "?"); ok {
		return after
	}
	return s
}
