package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"hockey-matchup-mcp/internal/category"
)

// SimulateMatchupArgs are the input arguments for the simulate_matchup tool.
type SimulateMatchupArgs struct {
	Team1      TeamRosterArg `json:"team1" jsonschema:"Team 1 roster: position -> player -> category -> season average (required)"`
	Team2      TeamRosterArg `json:"team2" jsonschema:"Team 2 roster: position -> player -> category -> season average (required)"`
	Categories []string      `json:"categories,omitempty" jsonschema:"Scored categories (default: league settings)"`
	StartDate  string        `json:"start_date" jsonschema:"Matchup start date, YYYY-MM-DD (required)"`
	EndDate    string        `json:"end_date" jsonschema:"Matchup end date inclusive, YYYY-MM-DD (required)"`
	Trials     int           `json:"trials,omitempty" jsonschema:"Monte-Carlo trials (default: league settings, 500)"`
	Seed       *int64        `json:"seed,omitempty" jsonschema:"Random seed for reproducible runs"`
}

// SimulateMatchupOutput is the output of the simulate_matchup tool.
type SimulateMatchupOutput struct {
	Team1WinProbability float64 `json:"team1_win_probability"`
	Team2WinProbability float64 `json:"team2_win_probability"`
	Days                int     `json:"days"`
	Trials              int     `json:"trials"`
}

func buildSimulateMatchup(cfg ServerConfig, args SimulateMatchupArgs) (SimulateMatchupOutput, error) {
	if args.Team1 == nil || args.Team2 == nil {
		return SimulateMatchupOutput{}, fmt.Errorf("team1 and team2 are required")
	}

	window, err := parseWindow(args.StartDate, args.EndDate)
	if err != nil {
		return SimulateMatchupOutput{}, err
	}
	trials := resolveTrials(cfg, args.Trials)
	weights := category.UnitWeights(resolveCategories(cfg, args.Categories))

	engine, err := newEngine(args.Seed)
	if err != nil {
		return SimulateMatchupOutput{}, err
	}

	prob, err := engine.SimulateMatchup(args.Team1.toRoster(), args.Team2.toRoster(), weights, window, trials)
	if err != nil {
		return SimulateMatchupOutput{}, err
	}

	return SimulateMatchupOutput{
		Team1WinProbability: prob.Team1,
		Team2WinProbability: prob.Team2,
		Days:                window.Days(),
		Trials:              trials,
	}, nil
}

// simulateMatchupHandler is the MCP tool handler for simulate_matchup.
func simulateMatchupHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, SimulateMatchupArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SimulateMatchupArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSimulateMatchup(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
