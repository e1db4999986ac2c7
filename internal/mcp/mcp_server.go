// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// selectionArgs are the tool options shared by every selection-based tool.
func selectionArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("query", mcp.Description("Share query or full share link. Cannot be combined with target, weapons or categories.")),
		mcp.WithString("target", mcp.Description("Armor target (Average, Light, Medium, Heavy). Defaults to Average.")),
		mcp.WithArray("weapons", mcp.Description("Weapon names to compare, in order."), mcp.WithStringItems()),
		mcp.WithArray("categories", mcp.Description("Categories such as 'Speed - Average'. Defaults to the default categories."), mcp.WithStringItems()),
		mcp.WithNumber("random_count", mcp.Description("Weapons picked at random when none of the requested ones exist.")),
		mcp.WithBoolean("all", mcp.Description("Select every weapon of the catalog.")),
	}
}

// NewMCPServer initializes and configures the Armory MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, eng *core.Engine, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Armory Weapon Comparison Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		engine:  eng,
		mgr:     mgr,
		session: eng.NewSession(baseCfg),
	}
	h.session.OnChange(func(v schema.View) {
		s.SendNotificationToAllClients("armory/selection_changed", map[string]any{
			"query":   v.Query,
			"weapons": v.Weapons,
		})
	})

	// --- 1. Tool: search_weapons ---
	s.AddTool(mcp.NewTool("search_weapons",
		mcp.WithDescription("Find catalog weapons whose name contains a text, ignoring case."),
		mcp.WithString("text", mcp.Description("Text to look for. Empty lists every weapon.")),
		mcp.WithArray("exclude", mcp.Description("Weapon names already selected, left out of the results."), mcp.WithStringItems()),
	), h.handleSearchWeapons)

	// --- 2. Tool: build_charts ---
	chartOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Build the radar chart and one bar chart per category for a weapon selection."),
		mcp.WithString("chart", mcp.Description("Charts to return (all, radar, bar). Defaults to 'all'."), mcp.Enum("all", "radar", "bar")),
	}, selectionArgs()...)
	s.AddTool(mcp.NewTool("build_charts", chartOpts...), h.handleBuildCharts)

	// --- 3. Tool: share_link ---
	shareOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Encode a weapon selection as a share query and link."),
	}, selectionArgs()...)
	s.AddTool(mcp.NewTool("share_link", shareOpts...), h.handleShareLink)

	// --- 4. Tool: list_categories ---
	s.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List every chartable category with its unit and whether target bonuses apply."),
	), h.handleListCategories)

	// --- 5. Tool: list_links ---
	s.AddTool(mcp.NewTool("list_links",
		mcp.WithDescription("List the saved share links, most recent first."),
	), h.handleListLinks)

	addSessionTools(s, h)

	return s
}

// addSessionTools registers the tools that edit the selection kept by the server.
// Every one of them answers with the refreshed charts.
func addSessionTools(s *server.MCPServer, h *toolHandler) {
	s.AddTool(mcp.NewTool("get_selection",
		mcp.WithDescription("Show the current selection with its share link and charts."),
	), h.handleGetSelection)

	s.AddTool(mcp.NewTool("load_query",
		mcp.WithDescription("Replace the current selection with a share query or link."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Share query or full share link.")),
	), h.handleLoadQuery)

	s.AddTool(mcp.NewTool("add_weapon",
		mcp.WithDescription("Add a catalog weapon to the current selection."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Exact weapon name.")),
	), h.handleAddWeapon)

	s.AddTool(mcp.NewTool("remove_weapon",
		mcp.WithDescription("Remove a weapon from the current selection."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Exact weapon name.")),
	), h.handleRemoveWeapon)

	s.AddTool(mcp.NewTool("clear_weapons",
		mcp.WithDescription("Remove every weapon from the current selection."),
	), h.handleClearWeapons)

	s.AddTool(mcp.NewTool("select_all",
		mcp.WithDescription("Select every weapon of the catalog."),
	), h.handleSelectAll)

	s.AddTool(mcp.NewTool("select_random",
		mcp.WithDescription("Replace the selected weapons with a random pick."),
		mcp.WithNumber("count", mcp.Description("Weapons to pick. Defaults to the configured random count.")),
	), h.handleSelectRandom)

	s.AddTool(mcp.NewTool("set_category",
		mcp.WithDescription("Enable or disable a category of the current selection."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category such as 'Damage - Stab'.")),
		mcp.WithBoolean("enabled", mcp.Description("Whether the category is charted. Defaults to true.")),
	), h.handleSetCategory)

	s.AddTool(mcp.NewTool("set_target",
		mcp.WithDescription("Change the armor target of the current selection."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Armor target (Average, Light, Medium, Heavy).")),
	), h.handleSetTarget)

	s.AddTool(mcp.NewTool("reset_categories",
		mcp.WithDescription("Restore the default categories of the current selection."),
	), h.handleResetCategories)

	s.AddTool(mcp.NewTool("selectable_weapons",
		mcp.WithDescription("Find catalog weapons matching a text that are not selected yet."),
		mcp.WithString("text", mcp.Description("Text to look for, ignoring case. Empty lists every remaining weapon.")),
	), h.handleSelectableWeapons)
}

// StartMCPServer starts the Armory MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	eng, err := core.LoadEngine(baseCfg)
	if err != nil {
		return err
	}
	s := NewMCPServer(baseCfg, eng, mgr)
	return server.ServeStdio(s)
}
