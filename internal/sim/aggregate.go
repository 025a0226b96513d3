package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"hockey-matchup-mcp/internal/category"
	"hockey-matchup-mcp/internal/roster"
)

// WinProbability is the aggregate simulation result. The two fractions sum
// to at most 1; the remainder is the probability of an exact points tie,
// which counts toward neither team.
type WinProbability struct {
	Team1 float64 `json:"team1"`
	Team2 float64 `json:"team2"`
}

// SimulateMatchup estimates each team's probability of winning the matchup
// on aggregate points. For every day in the window it draws one sample per
// trial for each rostered player and weighted category, accumulates the
// weighted samples into a per-trial total for the owning team, and reports
// the fraction of trials in which each team's total is strictly greater.
//
// Results are memoized on a content hash of (team1, team2, weights, window,
// trials), so changing any stat-line value produces a fresh simulation while
// repeat calls with identical inputs return the cached result. Callers must
// not mutate rosters they have already simulated with.
func (e *Engine) SimulateMatchup(team1, team2 roster.Roster, weights category.Weights, window Window, trials int) (WinProbability, error) {
	if trials <= 0 {
		return WinProbability{}, ErrInvalidTrials
	}
	days := window.Days()
	if days < 1 {
		return WinProbability{}, ErrInvalidWindow
	}

	key := matchupKey(team1, team2, weights, window, trials)
	if cached, ok := e.memo.Get(key); ok {
		return cached, nil
	}

	cats := weights.Names()
	total1 := make([]float64, trials)
	total2 := make([]float64, trials)

	sides := []struct {
		team   roster.Roster
		totals []float64
	}{
		{team1, total1},
		{team2, total2},
	}

	for day := 0; day < days; day++ {
		for _, side := range sides {
			for _, pos := range side.team.Positions() {
				for _, name := range side.team.Players(pos) {
					line := side.team[pos][name]
					if len(line) == 0 {
						continue
					}
					for _, cat := range cats {
						weight := weights[cat]
						mean := line[cat]
						for i := 0; i < trials; i++ {
							side.totals[i] += weight * e.sample(mean)
						}
					}
				}
			}
		}
	}

	var wins1, wins2 int
	for i := 0; i < trials; i++ {
		switch {
		case total1[i] > total2[i]:
			wins1++
		case total2[i] > total1[i]:
			wins2++
		}
	}

	result := WinProbability{
		Team1: float64(wins1) / float64(trials),
		Team2: float64(wins2) / float64(trials),
	}
	e.memo.Add(key, result)
	return result, nil
}

// matchupKey builds the memo cache key: a structural hash over both rosters,
// the weights, the window bounds, and the trial count. Object identity plays
// no part, so rebuilding an equal roster still hits the cache.
func matchupKey(team1, team2 roster.Roster, weights category.Weights, window Window, trials int) uint64 {
	d := xxhash.New()
	team1.HashInto(d)
	_, _ = d.Write([]byte{0xff})
	team2.HashInto(d)
	_, _ = d.Write([]byte{0xff})
	for _, cat := range weights.Names() {
		_, _ = d.WriteString(cat)
		_, _ = d.Write([]byte{0})
		writeUint64(d, math.Float64bits(weights[cat]))
	}
	writeUint64(d, uint64(window.Start.Unix()))
	writeUint64(d, uint64(window.End.Unix()))
	writeUint64(d, uint64(trials))
	return d.Sum64()
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, _ = d.Write(b[:])
}
