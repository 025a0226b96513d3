package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"hockey-matchup-mcp/internal/nhl"
)

// SearchPlayerArgs are the input arguments for the search_player tool.
type SearchPlayerArgs struct {
	Name string `json:"name" jsonschema:"Full or partial player name (required)"`
}

// SearchPlayerOutput lists the players matching a name query.
type SearchPlayerOutput struct {
	Query   string           `json:"query"`
	Players []nhl.Suggestion `json:"players"`
}

func buildSearchPlayer(cfg ServerConfig, args SearchPlayerArgs) (SearchPlayerOutput, error) {
	if args.Name == "" {
		return SearchPlayerOutput{}, fmt.Errorf("name is required")
	}
	players, err := cfg.Client.SearchPlayers(args.Name)
	if err != nil {
		return SearchPlayerOutput{}, err
	}
	return SearchPlayerOutput{Query: args.Name, Players: players}, nil
}

// searchPlayerHandler is the MCP tool handler for search_player.
func searchPlayerHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, SearchPlayerArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SearchPlayerArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSearchPlayer(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}

// PlayerStatsArgs are the input arguments for the player_stats tool.
type PlayerStatsArgs struct {
	PlayerID   int      `json:"player_id" jsonschema:"NHL player id (required)"`
	Season     string   `json:"season,omitempty" jsonschema:"Season id like 20232024 (default: league settings)"`
	Categories []string `json:"categories,omitempty" jsonschema:"Categories to report (default: league settings)"`
}

// PlayerStatsOutput reports one player's season averages per category.
type PlayerStatsOutput struct {
	PlayerID int                `json:"player_id"`
	Season   string             `json:"season"`
	Stats    map[string]float64 `json:"stats"`
}

func buildPlayerStats(cfg ServerConfig, args PlayerStatsArgs) (PlayerStatsOutput, error) {
	if args.PlayerID == 0 {
		return PlayerStatsOutput{}, fmt.Errorf("player_id is required")
	}
	season := args.Season
	if season == "" {
		season = cfg.League.Season
	}
	selected := resolveCategories(cfg, args.Categories)

	line, err := cfg.Client.PlayerStats(args.PlayerID, season, selected)
	if err != nil {
		return PlayerStatsOutput{}, err
	}
	return PlayerStatsOutput{
		PlayerID: args.PlayerID,
		Season:   season,
		Stats:    map[string]float64(line),
	}, nil
}

// playerStatsHandler is the MCP tool handler for player_stats.
func playerStatsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, PlayerStatsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerStatsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerStats(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
