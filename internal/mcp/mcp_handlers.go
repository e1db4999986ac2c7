package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/internal/outwriter"
	"github.com/huangsam/armory/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	engine  *core.Engine
	mgr     contract.StoreManager

	mu      sync.Mutex
	session *core.Session
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

// selectionConfig applies the selection arguments of a request on a copy of the base config.
func (h *toolHandler) selectionConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	err := contract.RevalidateSelection(cfg,
		request.GetString("query", ""),
		request.GetString("target", ""),
		request.GetStringSlice("weapons", nil),
		request.GetStringSlice("categories", nil),
		request.GetString("chart", ""),
	)
	if err != nil {
		return nil, err
	}
	if n := request.GetInt("random_count", -1); n >= 0 {
		cfg.RandomCount = n
	}
	cfg.SelectAll = request.GetBool("all", false)
	return cfg, nil
}

func (h *toolHandler) handleSearchWeapons(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel := core.NewSelection(h.engine.Catalog)
	for _, name := range request.GetStringSlice("exclude", nil) {
		sel.AddWeapon(name)
	}
	found := core.Search(h.engine.Catalog, request.GetString("text", ""), sel)

	names := make([]string, 0, len(found))
	for _, w := range found {
		names = append(names, w.Name)
	}
	return jsonResult(names), nil
}

func (h *toolHandler) handleBuildCharts(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.selectionConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
	}

	view := h.engine.Render(h.engine.SelectionFor(cfg), cfg.BaseURL)
	return jsonResult(outwriter.NewViewReport(view, outwriter.SelectCharts(view, cfg.Chart))), nil
}

func (h *toolHandler) handleShareLink(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.selectionConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
	}

	sel := h.engine.SelectionFor(cfg)
	link, err := core.ShareLink(cfg.BaseURL, sel)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("share link failed: %v", err)), nil
	}
	return jsonResult(map[string]string{
		"query": core.EncodeQuery(core.Encode(sel)),
		"link":  link,
	}), nil
}

type categoryInfo struct {
	Category schema.Category `json:"category"`
	Unit     schema.Unit     `json:"unit"`
	Bonus    bool            `json:"bonus"`
}

func (h *toolHandler) handleListCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := make([]categoryInfo, 0, len(schema.AllCategories))
	for _, c := range schema.AllCategories {
		out = append(out, categoryInfo{Category: c, Unit: c.Unit(), Bonus: c.HasBonus()})
	}
	return jsonResult(out), nil
}

func (h *toolHandler) handleListLinks(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.mgr == nil || h.mgr.GetLinkStore() == nil {
		return mcp.NewToolResultError(core.ErrNoLinkStore.Error()), nil
	}
	links, err := h.mgr.GetLinkStore().List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing links failed: %v", err)), nil
	}
	if links == nil {
		links = []schema.Link{}
	}
	return jsonResult(links), nil
}

func viewResult(view schema.View) *mcp.CallToolResult {
	return jsonResult(outwriter.NewViewReport(view, view.Charts()))
}

// mutate runs fn against the session while holding its lock.
func (h *toolHandler) mutate(fn func(s *core.Session) schema.View) *mcp.CallToolResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return viewResult(fn(h.session))
}

func (h *toolHandler) handleGetSelection(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.mutate(func(s *core.Session) schema.View { return s.View() }), nil
}

func (h *toolHandler) handleLoadQuery(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	return h.mutate(func(s *core.Session) schema.View {
		return s.LoadQuery(core.QueryOf(query))
	}), nil
}

func (h *toolHandler) handleAddWeapon(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if !h.engine.Catalog.Contains(name) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown weapon %q. use search_weapons to list them", name)), nil
	}
	return h.mutate(func(s *core.Session) schema.View { return s.AddWeapon(name) }), nil
}

func (h *toolHandler) handleRemoveWeapon(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	return h.mutate(func(s *core.Session) schema.View { return s.RemoveWeapon(name) }), nil
}

func (h *toolHandler) handleClearWeapons(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.mutate((*core.Session).ClearWeapons), nil
}

func (h *toolHandler) handleSelectAll(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.mutate((*core.Session).SelectAll), nil
}

func (h *toolHandler) handleSelectRandom(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := request.GetInt("count", h.baseCfg.RandomCount)
	if n < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid count %d. must not be negative", n)), nil
	}
	return h.mutate(func(s *core.Session) schema.View { return s.SelectRandom(n) }), nil
}

func (h *toolHandler) handleSetCategory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("category", "")
	c, ok := schema.ParseCategory(raw)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid category '%s'. use list_categories to list them", raw)), nil
	}
	enabled := request.GetBool("enabled", true)
	return h.mutate(func(s *core.Session) schema.View { return s.SetCategory(c, enabled) }), nil
}

func (h *toolHandler) handleSetTarget(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("target", "")
	t, ok := schema.ParseTarget(raw)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid target '%s'", raw)), nil
	}
	return h.mutate(func(s *core.Session) schema.View { return s.SetTarget(t) }), nil
}

func (h *toolHandler) handleResetCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.mutate((*core.Session).ResetCategories), nil
}

func (h *toolHandler) handleSelectableWeapons(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	found := h.session.Search(request.GetString("text", ""))
	h.mu.Unlock()

	names := make([]string, 0, len(found))
	for _, w := range found {
		names = append(names, w.Name)
	}
	return jsonResult(names), nil
}
