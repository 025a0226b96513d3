package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"hockey-matchup-mcp/internal/category"
	"hockey-matchup-mcp/internal/insights"
	"hockey-matchup-mcp/internal/roster"
)

// ReportRosterArg is a roster given by player id rather than inline stats:
// position label → player name → NHL player id. Season averages are
// resolved through the lookup client before simulating.
type ReportRosterArg map[string]map[string]int

// MatchupReportArgs are the input arguments for the matchup_report tool.
type MatchupReportArgs struct {
	Team1      ReportRosterArg `json:"team1" jsonschema:"Team 1 roster: position -> player name -> NHL player id (required)"`
	Team2      ReportRosterArg `json:"team2" jsonschema:"Team 2 roster: position -> player name -> NHL player id (required)"`
	Categories []string        `json:"categories,omitempty" jsonschema:"Scored categories (default: league settings)"`
	Season     string          `json:"season,omitempty" jsonschema:"Season id like 20232024 (default: league settings)"`
	StartDate  string          `json:"start_date" jsonschema:"Matchup start date, YYYY-MM-DD (required)"`
	EndDate    string          `json:"end_date" jsonschema:"Matchup end date inclusive, YYYY-MM-DD (required)"`
	Trials     int             `json:"trials,omitempty" jsonschema:"Monte-Carlo trials (default: league settings, 500)"`
	Seed       *int64          `json:"seed,omitempty" jsonschema:"Random seed for reproducible runs"`
}

// MatchupReportOutput combines both simulators plus roster advice for one
// matchup: win probabilities, the expected category scoreline, and team 1's
// underperforming players.
type MatchupReportOutput struct {
	Team1WinProbability float64               `json:"team1_win_probability"`
	Team2WinProbability float64               `json:"team2_win_probability"`
	Team1Categories     int                   `json:"team1_categories"`
	Team2Categories     int                   `json:"team2_categories"`
	Ties                int                   `json:"ties"`
	Days                int                   `json:"days"`
	Trials              int                   `json:"trials"`
	Underperformers     []insights.WeakPlayer `json:"underperformers"`
}

func buildMatchupReport(cfg ServerConfig, args MatchupReportArgs) (MatchupReportOutput, error) {
	if args.Team1 == nil || args.Team2 == nil {
		return MatchupReportOutput{}, fmt.Errorf("team1 and team2 are required")
	}

	window, err := parseWindow(args.StartDate, args.EndDate)
	if err != nil {
		return MatchupReportOutput{}, err
	}
	trials := resolveTrials(cfg, args.Trials)
	selected := resolveCategories(cfg, args.Categories)
	season := args.Season
	if season == "" {
		season = cfg.League.Season
	}

	team1, err := resolveRoster(cfg, args.Team1, season, selected)
	if err != nil {
		return MatchupReportOutput{}, fmt.Errorf("team1: %w", err)
	}
	team2, err := resolveRoster(cfg, args.Team2, season, selected)
	if err != nil {
		return MatchupReportOutput{}, fmt.Errorf("team2: %w", err)
	}

	engine, err := newEngine(args.Seed)
	if err != nil {
		return MatchupReportOutput{}, err
	}

	prob, err := engine.SimulateMatchup(team1, team2, category.UnitWeights(selected), window, trials)
	if err != nil {
		return MatchupReportOutput{}, err
	}
	score, err := engine.SimulateCategories(team1, team2, selected, window, trials)
	if err != nil {
		return MatchupReportOutput{}, err
	}

	return MatchupReportOutput{
		Team1WinProbability: prob.Team1,
		Team2WinProbability: prob.Team2,
		Team1Categories:     score.Team1,
		Team2Categories:     score.Team2,
		Ties:                score.Ties,
		Days:                window.Days(),
		Trials:              trials,
		Underperformers:     insights.Underperformers(team1, selected, insights.DefaultThreshold),
	}, nil
}

// resolveRoster fetches season averages for every rostered player id.
// One failed lookup fails the whole roster; the simulators never see
// half-resolved data.
func resolveRoster(cfg ServerConfig, arg ReportRosterArg, season string, selected []string) (roster.Roster, error) {
	out := make(roster.Roster, len(arg))
	for pos, players := range arg {
		out[pos] = make(map[string]roster.StatLine, len(players))
		for name, id := range players {
			line, err := cfg.Client.PlayerStats(id, season, selected)
			if err != nil {
				return nil, fmt.Errorf("%s (%d): %w", name, id, err)
			}
			out[pos][name] = line
		}
	}
	cfg.Log.WithFields(logrus.Fields{
		"players": out.PlayerCount(),
		"season":  season,
	}).Debug("resolved roster")
	return out, nil
}

// matchupReportHandler is the MCP tool handler for matchup_report.
func matchupReportHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, MatchupReportArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args MatchupReportArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMatchupReport(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
