package sim

import (
	"errors"
	"math"
	"testing"

	"hockey-matchup-mcp/internal/category"
	"hockey-matchup-mcp/internal/roster"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// soloRoster builds a roster with one player at Center carrying the given
// stat line.
func soloRoster(name string, line roster.StatLine) roster.Roster {
	return roster.Roster{"Center": {name: line}}
}

// balancedRosters returns two rosters with identical stat lines, so neither
// side has an edge.
func balancedRosters() (roster.Roster, roster.Roster) {
	line := roster.StatLine{"Goals": 0.5, "Assists": 0.7, "Shots": 3.1}
	t1 := roster.Roster{
		"Center":  {"A. Matthews": line},
		"Defense": {"C. Makar": line},
	}
	t2 := roster.Roster{
		"Center":  {"N. MacKinnon": line},
		"Defense": {"Q. Hughes": line},
	}
	return t1, t2
}

var skaterWeights = category.UnitWeights([]string{"Goals", "Assists", "Shots"})

// ---------------------------------------------------------------------------
// Aggregate win simulator
// ---------------------------------------------------------------------------

func TestSimulateMatchup_FractionsInRange(t *testing.T) {
	t1, t2 := balancedRosters()
	w := mustWindow(t, "2026-03-02", "2026-03-08")

	prob, err := New(1).SimulateMatchup(t1, t2, skaterWeights, w, 500)
	if err != nil {
		t.Fatalf("SimulateMatchup: %v", err)
	}

	if prob.Team1 < 0 || prob.Team1 > 1 {
		t.Errorf("Team1 = %v, want in [0, 1]", prob.Team1)
	}
	if prob.Team2 < 0 || prob.Team2 > 1 {
		t.Errorf("Team2 = %v, want in [0, 1]", prob.Team2)
	}
	if sum := prob.Team1 + prob.Team2; sum > 1 {
		t.Errorf("Team1 + Team2 = %v, want <= 1", sum)
	}
}

func TestSimulateMatchup_Deterministic(t *testing.T) {
	t1, t2 := balancedRosters()
	w := mustWindow(t, "2026-03-02", "2026-03-08")

	first, err := New(42).SimulateMatchup(t1, t2, skaterWeights, w, 500)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := New(42).SimulateMatchup(t1, t2, skaterWeights, w, 500)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first != second {
		t.Errorf("same seed produced %+v then %+v", first, second)
	}
}

func TestSimulateMatchup_ZeroSignal(t *testing.T) {
	// Identical non-empty stat lines on both sides: each team should win
	// about half the trials.
	t1, t2 := balancedRosters()
	w := mustWindow(t, "2026-03-02", "2026-03-08")

	prob, err := New(7).SimulateMatchup(t1, t2, skaterWeights, w, 500)
	if err != nil {
		t.Fatalf("SimulateMatchup: %v", err)
	}

	if math.Abs(prob.Team1-0.5) > 0.1 {
		t.Errorf("Team1 = %v, want 0.5 ± 0.1", prob.Team1)
	}
	if math.Abs(prob.Team2-0.5) > 0.1 {
		t.Errorf("Team2 = %v, want 0.5 ± 0.1", prob.Team2)
	}
}

func TestSimulateMatchup_SwapSymmetry(t *testing.T) {
	t1 := soloRoster("A", roster.StatLine{"Goals": 2})
	t2 := soloRoster("B", roster.StatLine{"Goals": 1})
	weights := category.UnitWeights([]string{"Goals"})
	w := mustWindow(t, "2026-03-02", "2026-03-08")

	ab, err := New(11).SimulateMatchup(t1, t2, weights, w, 2000)
	if err != nil {
		t.Fatalf("a vs b: %v", err)
	}
	ba, err := New(11).SimulateMatchup(t2, t1, weights, w, 2000)
	if err != nil {
		t.Fatalf("b vs a: %v", err)
	}

	if math.Abs(ab.Team1-ba.Team2) > 0.05 {
		t.Errorf("swap asymmetry: a-first Team1 = %v, b-first Team2 = %v", ab.Team1, ba.Team2)
	}
}

func TestSimulateMatchup_EmptyRosters(t *testing.T) {
	w := mustWindow(t, "2026-03-02", "2026-03-08")

	prob, err := New(1).SimulateMatchup(roster.Roster{}, roster.Roster{}, skaterWeights, w, 500)
	if err != nil {
		t.Fatalf("SimulateMatchup: %v", err)
	}

	// Every trial ties at 0 = 0, so neither team records a win.
	if prob.Team1 != 0 || prob.Team2 != 0 {
		t.Errorf("empty rosters: got %+v, want both 0", prob)
	}
}

func TestSimulateMatchup_EmptyPositionsContributeZero(t *testing.T) {
	t1 := roster.Roster{
		"Center": {"A": roster.StatLine{"Goals": 1}},
		"Bench":  {}, // no players — must not break anything
	}
	t2 := soloRoster("B", roster.StatLine{"Goals": 1})
	w := mustWindow(t, "2026-03-02", "2026-03-02")

	if _, err := New(1).SimulateMatchup(t1, t2, category.UnitWeights([]string{"Goals"}), w, 100); err != nil {
		t.Errorf("SimulateMatchup with empty position: %v", err)
	}
}

func TestSimulateMatchup_StrongerTeamWins(t *testing.T) {
	// One player each, single category: mean 3 vs mean 1 over one day.
	t1 := soloRoster("Sniper", roster.StatLine{"Goals": 3})
	t2 := soloRoster("Grinder", roster.StatLine{"Goals": 1})
	w := mustWindow(t, "2026-03-02", "2026-03-02")

	prob, err := New(99).SimulateMatchup(t1, t2, category.UnitWeights([]string{"Goals"}), w, 2000)
	if err != nil {
		t.Fatalf("SimulateMatchup: %v", err)
	}

	if prob.Team1 <= 0.8 {
		t.Errorf("Team1 = %v, want > 0.8 for a 3σ-separated matchup", prob.Team1)
	}
	if prob.Team1 <= prob.Team2 {
		t.Errorf("Team1 (%v) should beat Team2 (%v)", prob.Team1, prob.Team2)
	}
}

func TestSimulateMatchup_AllZeroMeansTie(t *testing.T) {
	// Zero averages collapse to zero-variance samples: every trial ties.
	t1 := soloRoster("A", roster.StatLine{"Goals": 0})
	t2 := soloRoster("B", roster.StatLine{"Goals": 0})
	w := mustWindow(t, "2026-03-02", "2026-03-08")

	prob, err := New(1).SimulateMatchup(t1, t2, category.UnitWeights([]string{"Goals"}), w, 200)
	if err != nil {
		t.Fatalf("SimulateMatchup: %v", err)
	}
	if prob.Team1 != 0 || prob.Team2 != 0 {
		t.Errorf("zero-mean rosters: got %+v, want both 0", prob)
	}
}

func TestSimulateMatchup_InvalidTrials(t *testing.T) {
	t1, t2 := balancedRosters()
	w := mustWindow(t, "2026-03-02", "2026-03-08")

	for _, trials := range []int{0, -5} {
		_, err := New(1).SimulateMatchup(t1, t2, skaterWeights, w, trials)
		if !errors.Is(err, ErrInvalidTrials) {
			t.Errorf("trials=%d: err = %v, want ErrInvalidTrials", trials, err)
		}
	}
}

func TestSimulateMatchup_InvalidWindow(t *testing.T) {
	t1, t2 := balancedRosters()
	// Bypass NewWindow to simulate a caller handing in a raw bad window.
	w := Window{Start: day(t, "2026-03-08"), End: day(t, "2026-03-02")}

	_, err := New(1).SimulateMatchup(t1, t2, skaterWeights, w, 500)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
}

// ---------------------------------------------------------------------------
// Memoization
// ---------------------------------------------------------------------------

func TestSimulateMatchup_MemoizedOnContent(t *testing.T) {
	e := New(5)
	w := mustWindow(t, "2026-03-02", "2026-03-08")
	weights := category.UnitWeights([]string{"Goals"})

	build := func(goals float64) roster.Roster {
		return soloRoster("A. Matthews", roster.StatLine{"Goals": goals})
	}

	first, err := e.SimulateMatchup(build(2), build(1), weights, w, 500)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if e.memo.Len() != 1 {
		t.Fatalf("memo entries = %d, want 1", e.memo.Len())
	}

	// Structurally equal rosters, freshly constructed: must hit the cache
	// and return the identical result even though the RNG has advanced.
	second, err := e.SimulateMatchup(build(2), build(1), weights, w, 500)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Errorf("cache miss on equal content: %+v then %+v", first, second)
	}
	if e.memo.Len() != 1 {
		t.Errorf("memo entries = %d after repeat call, want 1", e.memo.Len())
	}

	// Changing one stat-line value must invalidate: new key, new entry.
	if _, err := e.SimulateMatchup(build(2.5), build(1), weights, w, 500); err != nil {
		t.Fatalf("third: %v", err)
	}
	if e.memo.Len() != 2 {
		t.Errorf("memo entries = %d after changed roster, want 2", e.memo.Len())
	}
}

func TestMatchupKey_SensitiveToEveryInput(t *testing.T) {
	w1 := mustWindow(t, "2026-03-02", "2026-03-08")
	w2 := mustWindow(t, "2026-03-02", "2026-03-09")
	r1 := soloRoster("A", roster.StatLine{"Goals": 2})
	r2 := soloRoster("B", roster.StatLine{"Goals": 1})
	weights := category.UnitWeights([]string{"Goals"})

	base := matchupKey(r1, r2, weights, w1, 500)

	variants := map[string]uint64{
		"swapped teams":  matchupKey(r2, r1, weights, w1, 500),
		"longer window":  matchupKey(r1, r2, weights, w2, 500),
		"more trials":    matchupKey(r1, r2, weights, w1, 1000),
		"extra category": matchupKey(r1, r2, category.UnitWeights([]string{"Goals", "Assists"}), w1, 500),
	}
	for name, key := range variants {
		if key == base {
			t.Errorf("%s: key collides with base", name)
		}
	}

	if again := matchupKey(r1, r2, weights, w1, 500); again != base {
		t.Errorf("same inputs hashed differently: %d vs %d", again, base)
	}
}
