package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CategoryMatchupArgs are the input arguments for the category_matchup tool.
type CategoryMatchupArgs struct {
	Team1      TeamRosterArg `json:"team1" jsonschema:"Team 1 roster: position -> player -> category -> season average (required)"`
	Team2      TeamRosterArg `json:"team2" jsonschema:"Team 2 roster: position -> player -> category -> season average (required)"`
	Categories []string      `json:"categories,omitempty" jsonschema:"Scored categories (default: league settings)"`
	StartDate  string        `json:"start_date" jsonschema:"Matchup start date, YYYY-MM-DD (required)"`
	EndDate    string        `json:"end_date" jsonschema:"Matchup end date inclusive, YYYY-MM-DD (required)"`
	Trials     int           `json:"trials,omitempty" jsonschema:"Monte-Carlo trials (default: league settings, 500)"`
	Seed       *int64        `json:"seed,omitempty" jsonschema:"Random seed for reproducible runs"`
}

// CategoryMatchupOutput is the expected category scoreline.
type CategoryMatchupOutput struct {
	Team1Categories int `json:"team1_categories"`
	Team2Categories int `json:"team2_categories"`
	Ties            int `json:"ties"`
	CategoryCount   int `json:"category_count"`
	Days            int `json:"days"`
	Trials          int `json:"trials"`
}

func buildCategoryMatchup(cfg ServerConfig, args CategoryMatchupArgs) (CategoryMatchupOutput, error) {
	if args.Team1 == nil || args.Team2 == nil {
		return CategoryMatchupOutput{}, fmt.Errorf("team1 and team2 are required")
	}

	window, err := parseWindow(args.StartDate, args.EndDate)
	if err != nil {
		return CategoryMatchupOutput{}, err
	}
	trials := resolveTrials(cfg, args.Trials)
	selected := resolveCategories(cfg, args.Categories)

	engine, err := newEngine(args.Seed)
	if err != nil {
		return CategoryMatchupOutput{}, err
	}

	score, err := engine.SimulateCategories(args.Team1.toRoster(), args.Team2.toRoster(), selected, window, trials)
	if err != nil {
		return CategoryMatchupOutput{}, err
	}

	return CategoryMatchupOutput{
		Team1Categories: score.Team1,
		Team2Categories: score.Team2,
		Ties:            score.Ties,
		CategoryCount:   len(selected),
		Days:            window.Days(),
		Trials:          trials,
	}, nil
}

// categoryMatchupHandler is the MCP tool handler for category_matchup.
func categoryMatchupHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, CategoryMatchupArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args CategoryMatchupArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildCategoryMatchup(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
