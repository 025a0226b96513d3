package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"hockey-matchup-mcp/internal/leagueconfig"
	"hockey-matchup-mcp/internal/nhl"
	"hockey-matchup-mcp/internal/roster"
	"hockey-matchup-mcp/internal/sim"
)

// ServerConfig carries the shared collaborators every tool needs.
type ServerConfig struct {
	League leagueconfig.Config
	Client *nhl.Client
	Log    *logrus.Logger
}

// TeamRosterArg is a roster as it arrives over MCP: position label →
// player name → category → season-average value.
type TeamRosterArg map[string]map[string]map[string]float64

// toRoster converts the wire shape into the simulation roster type.
func (a TeamRosterArg) toRoster() roster.Roster {
	r := make(roster.Roster, len(a))
	for pos, players := range a {
		r[pos] = make(map[string]roster.StatLine, len(players))
		for name, line := range players {
			r[pos][name] = roster.StatLine(line)
		}
	}
	return r
}

const dateLayout = "2006-01-02"

// parseWindow validates the start/end date strings and builds the
// simulation window.
func parseWindow(startDate, endDate string) (sim.Window, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return sim.Window{}, fmt.Errorf("start_date: want YYYY-MM-DD, got %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return sim.Window{}, fmt.Errorf("end_date: want YYYY-MM-DD, got %q", endDate)
	}
	return sim.NewWindow(start, end)
}

// resolveTrials applies the league default when the caller leaves the trial
// count unset. Explicit non-positive values still fail fast in the engine.
func resolveTrials(cfg ServerConfig, trials int) int {
	if trials == 0 {
		return cfg.League.Trials
	}
	return trials
}

// resolveCategories falls back to the league's scored categories.
func resolveCategories(cfg ServerConfig, categories []string) []string {
	if len(categories) == 0 {
		return cfg.League.Categories
	}
	return categories
}

// newEngine builds a simulation engine from an optional caller seed; absent
// a seed, one is generated so repeated calls explore fresh sample paths.
func newEngine(seed *int64) (*sim.Engine, error) {
	if seed != nil {
		return sim.New(*seed), nil
	}
	s, err := sim.NewSeed()
	if err != nil {
		return nil, err
	}
	return sim.New(s), nil
}

func toolMarshal(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
