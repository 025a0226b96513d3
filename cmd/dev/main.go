// Command dev runs both matchup simulators offline against a roster file,
// bypassing the MCP server. Useful for tuning league settings and checking
// simulation output by hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"hockey-matchup-mcp/internal/category"
	"hockey-matchup-mcp/internal/leagueconfig"
	"hockey-matchup-mcp/internal/roster"
	"hockey-matchup-mcp/internal/sim"
)

// rosterFile is the on-disk shape: both teams, each position → player →
// category → season average.
type rosterFile struct {
	Team1 roster.Roster `json:"team1"`
	Team2 roster.Roster `json:"team2"`
}

func main() {
	var (
		leaguePath  = flag.String("league", "", "path to league config YAML (empty = built-in defaults)")
		rostersPath = flag.String("rosters", "rosters.json", "path to roster JSON file")
		startDate   = flag.String("start", "", "matchup start date YYYY-MM-DD (default today)")
		endDate     = flag.String("end", "", "matchup end date YYYY-MM-DD (default start+6)")
		trials      = flag.Int("trials", 0, "Monte-Carlo trials (0 = league default)")
		seed        = flag.Int64("seed", 0, "random seed (0 = random)")
	)
	flag.Parse()

	league := leagueconfig.Default()
	if *leaguePath != "" {
		var err error
		league, err = leagueconfig.Load(*leaguePath)
		if err != nil {
			log.Fatalf("load league config: %v", err)
		}
	}

	raw, err := os.ReadFile(*rostersPath)
	if err != nil {
		log.Fatalf("read rosters: %v", err)
	}
	var rosters rosterFile
	if err := json.Unmarshal(raw, &rosters); err != nil {
		log.Fatalf("parse rosters: %v", err)
	}

	window, err := buildWindow(*startDate, *endDate)
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	n := *trials
	if n == 0 {
		n = league.Trials
	}

	s := *seed
	if s == 0 {
		s, err = sim.NewSeed()
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	engine := sim.New(s)

	prob, err := engine.SimulateMatchup(rosters.Team1, rosters.Team2, category.UnitWeights(league.Categories), window, n)
	if err != nil {
		log.Fatalf("simulate matchup: %v", err)
	}
	score, err := engine.SimulateCategories(rosters.Team1, rosters.Team2, league.Categories, window, n)
	if err != nil {
		log.Fatalf("category matchup: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "seed\t%d\n", s)
	fmt.Fprintf(w, "days\t%d\ttrials\t%d\n", window.Days(), n)
	fmt.Fprintf(w, "team 1 win probability\t%.2f%%\n", prob.Team1*100)
	fmt.Fprintf(w, "team 2 win probability\t%.2f%%\n", prob.Team2*100)
	fmt.Fprintf(w, "predicted score\t%d - %d\t(ties: %d)\n", score.Team1, score.Team2, score.Ties)
	w.Flush()
}

// buildWindow resolves the date flags: default is a one-week matchup
// starting today.
func buildWindow(startDate, endDate string) (sim.Window, error) {
	const layout = "2006-01-02"

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if startDate != "" {
		var err error
		start, err = time.Parse(layout, startDate)
		if err != nil {
			return sim.Window{}, fmt.Errorf("start: %w", err)
		}
	}

	end := start.AddDate(0, 0, 6)
	if endDate != "" {
		var err error
		end, err = time.Parse(layout, endDate)
		if err != nil {
			return sim.Window{}, fmt.Errorf("end: %w", err)
		}
	}

	return sim.NewWindow(start, end)
}
