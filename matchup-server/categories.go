package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"hockey-matchup-mcp/internal/category"
)

// ListCategoriesArgs is the input schema for list_categories (no parameters).
type ListCategoriesArgs struct{}

// ListCategoriesOutput is the known category universe plus which categories
// this league scores.
type ListCategoriesOutput struct {
	Categories []category.Info `json:"categories"`
	LeagueUses []string        `json:"league_uses"`
}

func buildListCategories(cfg ServerConfig) ListCategoriesOutput {
	return ListCategoriesOutput{
		Categories: category.All(),
		LeagueUses: cfg.League.Categories,
	}
}

// listCategoriesHandler is the MCP tool handler for list_categories.
func listCategoriesHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, ListCategoriesArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ListCategoriesArgs) (*mcp.CallToolResult, any, error) {
		return toolMarshal(buildListCategories(cfg))
	}
}
