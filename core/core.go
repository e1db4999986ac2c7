// Package core has the selection engine: selection state, dataset building,
// search, the share codec and the command entry points built on them.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/internal/catalog"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/internal/outwriter"
	"github.com/huangsam/armory/schema"
)

// ErrNoLinkStore is returned by link commands when no store was initialized.
var ErrNoLinkStore = errors.New("link store is not initialized")

// Engine bundles a catalog with its metrics and the active bonus table.
// It is read-only after construction and safe to share.
type Engine struct {
	Catalog    *catalog.Catalog
	Repository *catalog.Repository
	Bonus      algo.BonusTable
}

// NewEngine computes the metrics of a catalog. A nil bonus table uses the defaults.
func NewEngine(c *catalog.Catalog, bonus algo.BonusTable) (*Engine, error) {
	repo, err := catalog.NewRepository(c)
	if err != nil {
		return nil, err
	}
	if bonus == nil {
		bonus = algo.GetDefaultBonuses()
	}
	return &Engine{Catalog: c, Repository: repo, Bonus: bonus}, nil
}

// LoadEngine loads the configured catalog, or the embedded one, and builds its engine.
func LoadEngine(cfg *contract.Config) (*Engine, error) {
	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return NewEngine(c, cfg.Bonuses)
}

// Render builds the view of a selection.
func (e *Engine) Render(sel *Selection, baseURL string) schema.View {
	return Render(e.Repository, e.Bonus, sel, baseURL)
}

// Restore decodes pairs with the load-time fallbacks. With selectAll the whole
// catalog is selected instead of the decoded or random weapons.
func (e *Engine) Restore(pairs []schema.Pair, randomCount int, seed uint64, selectAll bool) *Selection {
	if !selectAll {
		return Restore(e.Catalog, pairs, randomCount, algo.NewSeededShuffler(seed))
	}
	sel := Decode(e.Catalog, pairs)
	sel.SelectAll()
	if len(sel.categories) == 0 {
		sel.ResetCategories()
	}
	return sel
}

// SelectionFor builds the selection requested on the command line, either
// from --query or from the selection flags. Unknown weapons are reported.
func (e *Engine) SelectionFor(cfg *contract.Config) *Selection {
	pairs := requestedPairs(cfg)
	warnUnknownWeapons(e.Catalog, pairs)
	return e.Restore(pairs, cfg.RandomCount, cfg.Seed, cfg.SelectAll)
}

// NewSession starts a session on the selection requested by cfg. Random
// picks made later in the session draw from the same seeded source.
func (e *Engine) NewSession(cfg *contract.Config) *Session {
	s := NewSession(e.Catalog, e.Repository, e.Bonus,
		WithShuffler(algo.NewSeededShuffler(cfg.Seed)),
		WithRandomCount(cfg.RandomCount),
		WithBaseURL(cfg.BaseURL),
	)
	s.LoadQuery(EncodeQuery(Encode(e.SelectionFor(cfg))))
	return s
}

func requestedPairs(cfg *contract.Config) []schema.Pair {
	if cfg.Query != "" {
		return ParseQuery(QueryOf(cfg.Query))
	}
	return cfg.Selection
}

func warnUnknownWeapons(c *catalog.Catalog, pairs []schema.Pair) {
	for _, p := range pairs {
		if p.Key == KeyWeapon && !c.Contains(p.Value) {
			contract.LogWarn("Skipping weapon", fmt.Errorf("%q is not in the catalog", p.Value))
		}
	}
}

// ExecuteChart renders the requested selection and prints its charts.
// It serves as the main entry point for the 'chart' command.
func ExecuteChart(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eng, err := LoadEngine(cfg)
	if err != nil {
		return err
	}
	view := eng.Render(eng.SelectionFor(cfg), cfg.BaseURL)
	return outwriter.NewOutWriter().WriteView(view, cfg)
}

// ExecuteSearch lists the weapons matching query that are not selected yet.
// The selection is decoded without fallbacks so nothing random is excluded.
func ExecuteSearch(ctx context.Context, cfg *contract.Config, query string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eng, err := LoadEngine(cfg)
	if err != nil {
		return err
	}
	pairs := requestedPairs(cfg)
	warnUnknownWeapons(eng.Catalog, pairs)
	sel := Decode(eng.Catalog, pairs)
	if cfg.SelectAll {
		sel.SelectAll()
	}
	return outwriter.NewOutWriter().WriteWeapons(Search(eng.Catalog, query, sel), cfg)
}

// ExecuteShare prints the share link of the requested selection.
func ExecuteShare(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eng, err := LoadEngine(cfg)
	if err != nil {
		return err
	}
	link, err := ShareLink(cfg.BaseURL, eng.SelectionFor(cfg))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, link)
	return err
}

// ExecuteCategories prints every category with its unit and bonus flag.
func ExecuteCategories(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteCategories(cfg)
}

// ExecuteLinkSave stores the share query of the requested selection under name.
func ExecuteLinkSave(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) (schema.Link, error) {
	store, err := linkStore(ctx, mgr)
	if err != nil {
		return schema.Link{}, err
	}
	eng, err := LoadEngine(cfg)
	if err != nil {
		return schema.Link{}, err
	}
	query := EncodeQuery(Encode(eng.SelectionFor(cfg)))
	link, err := store.Save(name, query, time.Now())
	if err != nil {
		return schema.Link{}, fmt.Errorf("failed to save link %q: %w", name, err)
	}
	return link, nil
}

// ExecuteLinkOpen renders the stored query of a saved link like 'chart' does.
func ExecuteLinkOpen(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	store, err := linkStore(ctx, mgr)
	if err != nil {
		return err
	}
	link, err := store.Get(name)
	if err != nil {
		return err
	}
	linkCfg := cfg.Clone()
	linkCfg.Query = link.Query
	linkCfg.Selection = nil
	return ExecuteChart(ctx, linkCfg, mgr)
}

// ExecuteLinkList prints every saved link, most recent first.
func ExecuteLinkList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	store, err := linkStore(ctx, mgr)
	if err != nil {
		return err
	}
	links, err := store.List()
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteLinks(links, cfg)
}

// ExecuteLinkDelete removes a saved link.
func ExecuteLinkDelete(ctx context.Context, _ *contract.Config, mgr contract.StoreManager, name string) error {
	store, err := linkStore(ctx, mgr)
	if err != nil {
		return err
	}
	return store.Delete(name)
}

func linkStore(ctx context.Context, mgr contract.StoreManager) (contract.LinkStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mgr == nil {
		return nil, ErrNoLinkStore
	}
	store := mgr.GetLinkStore()
	if store == nil {
		return nil, ErrNoLinkStore
	}
	return store, nil
}
