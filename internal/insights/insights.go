// Package insights derives roster advice from the same season-average data
// the simulators consume. None of it feeds back into the simulation.
package insights

import (
	"hockey-matchup-mcp/internal/roster"
)

// DefaultThreshold is the combined season-average floor below which a
// player is flagged as underperforming.
const DefaultThreshold = 10

// WeakPlayer flags a rostered player whose combined selected-category
// averages fall below the threshold, along with the category the player is
// weakest in as a replacement hint.
type WeakPlayer struct {
	Name            string  `json:"name"`
	Position        string  `json:"position"`
	CombinedAverage float64 `json:"combined_average"`
	WeakestStat     string  `json:"weakest_stat,omitempty"`
}

// Underperformers scans a roster for players whose summed averages across
// the selected categories fall below threshold. A threshold of zero or
// less uses DefaultThreshold. Players with empty stat lines are flagged
// with no weakest-stat hint.
func Underperformers(team roster.Roster, selected []string, threshold float64) []WeakPlayer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	weak := make([]WeakPlayer, 0)
	for _, pos := range team.Positions() {
		for _, name := range team.Players(pos) {
			line := team[pos][name]
			combined := 0.0
			for _, cat := range selected {
				combined += line[cat]
			}
			if combined >= threshold {
				continue
			}
			weak = append(weak, WeakPlayer{
				Name:            name,
				Position:        pos,
				CombinedAverage: combined,
				WeakestStat:     weakestStat(line),
			})
		}
	}
	return weak
}

// weakestStat returns the category with the lowest value in the line, or
// "" for an empty line. Ties break toward the lexicographically smaller
// category name so results are stable.
func weakestStat(line roster.StatLine) string {
	weakest := ""
	lowest := 0.0
	for cat, v := range line {
		if weakest == "" || v < lowest || (v == lowest && cat < weakest) {
			weakest = cat
			lowest = v
		}
	}
	return weakest
}

// AdvancedFactor blends possession and luck metrics (Corsi, Fenwick, PDO)
// into a single multiplier. Placeholder: the simulators do not apply it.
// Missing metrics fall back to league-average baselines.
func AdvancedFactor(advanced map[string]float64) float64 {
	corsi, ok := advanced["Corsi"]
	if !ok {
		corsi = 50
	}
	fenwick, ok := advanced["Fenwick"]
	if !ok {
		fenwick = 50
	}
	pdo, ok := advanced["PDO"]
	if !ok {
		pdo = 100
	}
	return (corsi*0.3 + fenwick*0.3 + pdo*0.4) / 100
}

// AdjustForOpponent scales a base projection by opponent defense strength
// and home ice. Placeholder: the simulators do not apply it.
func AdjustForOpponent(base, opponentDefenseRating float64, isHome bool) float64 {
	adjustment := 1 + (1 - opponentDefenseRating/100)
	homeBonus := 0.95
	if isHome {
		homeBonus = 1.05
	}
	return base * adjustment * homeBonus
}
