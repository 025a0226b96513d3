package sim

import (
	"math"

	"hockey-matchup-mcp/internal/category"
	"hockey-matchup-mcp/internal/roster"
)

// CategoryScore is the expected category scoreline: the trial-averaged,
// independently rounded count of categories won by each team and tied.
// Because the three averages are rounded independently, their sum may drift
// from the selected-category count by one.
type CategoryScore struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
	Ties  int `json:"ties"`
}

// SimulateCategories runs each selected category as its own contest. Per
// trial and per category it sums sampled daily performance across every
// rostered player on each team, negates both totals for lower-is-better
// categories so comparison is uniformly "higher wins", and tallies the
// category for the strictly greater team (equal totals tie). The per-trial
// tallies are averaged across trials and rounded to the nearest integer.
//
// Zero selected categories yields (0, 0, 0). Empty rosters contribute zero
// to every category total, which drives those categories to ties.
func (e *Engine) SimulateCategories(team1, team2 roster.Roster, selected []string, window Window, trials int) (CategoryScore, error) {
	if trials <= 0 {
		return CategoryScore{}, ErrInvalidTrials
	}
	days := window.Days()
	if days < 1 {
		return CategoryScore{}, ErrInvalidWindow
	}

	var sumWins1, sumWins2, sumTies int

	for trial := 0; trial < trials; trial++ {
		var wins1, wins2, ties int

		for _, cat := range selected {
			score1 := e.categoryTotal(team1, cat, days)
			score2 := e.categoryTotal(team2, cat, days)

			if category.DirectionOf(cat) == category.LowerIsBetter {
				score1 = -score1
				score2 = -score2
			}

			switch {
			case score1 > score2:
				wins1++
			case score2 > score1:
				wins2++
			default:
				ties++
			}
		}

		sumWins1 += wins1
		sumWins2 += wins2
		sumTies += ties
	}

	return CategoryScore{
		Team1: roundMean(sumWins1, trials),
		Team2: roundMean(sumWins2, trials),
		Ties:  roundMean(sumTies, trials),
	}, nil
}

// categoryTotal sums one team's sampled performance in a category across
// every rostered player and every day of the window.
func (e *Engine) categoryTotal(team roster.Roster, cat string, days int) float64 {
	total := 0.0
	for _, pos := range team.Positions() {
		for _, name := range team.Players(pos) {
			mean := team[pos][name][cat]
			for day := 0; day < days; day++ {
				total += e.sample(mean)
			}
		}
	}
	return total
}

func roundMean(sum, trials int) int {
	return int(math.Round(float64(sum) / float64(trials)))
}
