package core

import (
	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/internal/catalog"
	"github.com/huangsam/armory/schema"
)

// Listener is notified with the fresh view after every refresh.
type Listener func(schema.View)

// Session owns one selection and keeps its share query and charts in step
// with it. Each mutator runs the selection change to completion, then
// re-encodes, rebuilds every chart and notifies listeners, in that order.
// A session is not safe for concurrent use.
type Session struct {
	catalog     *catalog.Catalog
	source      MetricSource
	bonus       algo.BonusTable
	shuffler    algo.Shuffler
	randomCount int
	baseURL     string

	sel       *Selection
	view      schema.View
	listeners []Listener
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithShuffler sets the shuffle source for random selection.
func WithShuffler(s algo.Shuffler) SessionOption {
	return func(ss *Session) { ss.shuffler = s }
}

// WithRandomCount sets how many weapons the random fallback picks.
func WithRandomCount(n int) SessionOption {
	return func(ss *Session) { ss.randomCount = n }
}

// WithBaseURL sets the base of the share link carried in every view.
func WithBaseURL(u string) SessionOption {
	return func(ss *Session) { ss.baseURL = u }
}

// NewSession starts a session with default categories, the default target
// and no weapons.
func NewSession(c *catalog.Catalog, src MetricSource, bonus algo.BonusTable, opts ...SessionOption) *Session {
	s := &Session{
		catalog:     c,
		source:      src,
		bonus:       bonus,
		randomCount: schema.DefaultRandomCount,
		sel:         NewSelection(c),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shuffler == nil {
		s.shuffler = algo.NewSeededShuffler(0)
	}
	s.sel.ResetCategories()
	s.refresh()
	return s
}

// OnChange registers a listener for every subsequent refresh.
func (s *Session) OnChange(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() *Selection {
	return s.sel.Clone()
}

// View returns the last rendered snapshot.
func (s *Session) View() schema.View {
	return s.view
}

// LoadQuery replaces the selection with a decoded share query, applying the
// random-weapon and default-category fallbacks.
func (s *Session) LoadQuery(query string) schema.View {
	s.sel = Restore(s.catalog, ParseQuery(query), s.randomCount, s.shuffler)
	return s.refresh()
}

// AddWeapon adds a weapon by name.
func (s *Session) AddWeapon(name string) schema.View {
	s.sel.AddWeapon(name)
	return s.refresh()
}

// RemoveWeapon removes a weapon by name.
func (s *Session) RemoveWeapon(name string) schema.View {
	s.sel.RemoveWeapon(name)
	return s.refresh()
}

// ClearWeapons removes every weapon.
func (s *Session) ClearWeapons() schema.View {
	s.sel.ClearWeapons()
	return s.refresh()
}

// SetCategory toggles a category.
func (s *Session) SetCategory(c schema.Category, enabled bool) schema.View {
	s.sel.SetCategory(c, enabled)
	return s.refresh()
}

// SetTarget changes the target.
func (s *Session) SetTarget(t schema.Target) schema.View {
	s.sel.SetTarget(t)
	return s.refresh()
}

// ResetCategories restores the default categories.
func (s *Session) ResetCategories() schema.View {
	s.sel.ResetCategories()
	return s.refresh()
}

// SelectAll selects the whole catalog.
func (s *Session) SelectAll() schema.View {
	s.sel.SelectAll()
	return s.refresh()
}

// SelectRandom selects n random weapons.
func (s *Session) SelectRandom(n int) schema.View {
	s.sel.SelectRandom(n, s.shuffler)
	return s.refresh()
}

// Search lists the selectable weapons matching query.
func (s *Session) Search(query string) []schema.Weapon {
	return Search(s.catalog, query, s.sel)
}

// refresh recomputes the derived state of the current selection.
func (s *Session) refresh() schema.View {
	s.view = Render(s.source, s.bonus, s.sel, s.baseURL)
	for _, l := range s.listeners {
		l(s.view)
	}
	return s.view
}

// Render builds the complete view of a selection. An unusable base URL
// leaves the link empty.
func Render(src MetricSource, bonus algo.BonusTable, sel *Selection, baseURL string) schema.View {
	v := schema.View{
		Query:      EncodeQuery(Encode(sel)),
		Target:     sel.target,
		Weapons:    sel.WeaponNames(),
		Categories: sel.Categories(),
		Radar:      BuildRadar(src, bonus, sel),
		Bars:       BuildBars(src, bonus, sel),
	}
	if baseURL != "" {
		if link, err := ShareLink(baseURL, sel); err == nil {
			v.Link = link
		}
	}
	return v
}
