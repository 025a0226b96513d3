// Package roster holds the in-memory roster model consumed by the matchup
// simulators: per team, per position, per player, a mapping of category name
// to a season-average value. Rosters are built per invocation from lookup
// data and never mutated by the simulation.
package roster

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// StatLine maps a category name to one player's non-negative season-average
// per-game value. A missing category reads as zero.
type StatLine map[string]float64

// Roster maps a position label (Center, Defense, Goalie, ...) to the players
// filling that position, each with their stat line. Player names are unique
// per position.
type Roster map[string]map[string]StatLine

// Positions returns the roster's position labels in sorted order.
func (r Roster) Positions() []string {
	out := make([]string, 0, len(r))
	for pos := range r {
		out = append(out, pos)
	}
	sort.Strings(out)
	return out
}

// Players returns the player names at a position in sorted order.
func (r Roster) Players(pos string) []string {
	out := make([]string, 0, len(r[pos]))
	for name := range r[pos] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// PlayerCount returns the total number of rostered players across positions.
func (r Roster) PlayerCount() int {
	n := 0
	for _, players := range r {
		n += len(players)
	}
	return n
}

// HashInto writes a canonical encoding of the roster into d. Two rosters
// with equal positions, players, and stat-line values hash identically
// regardless of map construction order, so the digest is a sound cache key
// for simulation memoization.
func (r Roster) HashInto(d *xxhash.Digest) {
	for _, pos := range r.Positions() {
		writeString(d, pos)
		for _, name := range r.Players(pos) {
			writeString(d, name)
			line := r[pos][name]
			cats := make([]string, 0, len(line))
			for cat := range line {
				cats = append(cats, cat)
			}
			sort.Strings(cats)
			for _, cat := range cats {
				writeString(d, cat)
				writeFloat(d, line[cat])
			}
		}
	}
}

func writeString(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0})
}

func writeFloat(d *xxhash.Digest, f float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	_, _ = d.Write(b[:])
}
