// Package category defines the scored statistical categories of a fantasy
// hockey league: the known category universe, each category's directionality
// (whether a higher or lower raw value favors the team), and the linear
// scoring weights used by the aggregate win simulator.
package category

import "sort"

// Direction says whether a higher or lower raw value of a category favors
// the owning team.
type Direction int

const (
	// HigherIsBetter means a larger raw total wins the category (Goals, Assists).
	HigherIsBetter Direction = 1
	// LowerIsBetter means a smaller raw total wins the category (Penalty Minutes).
	LowerIsBetter Direction = -1
)

// directions is the known category universe. Directionality is fixed here
// and looked up by name; categories not listed default to HigherIsBetter.
var directions = map[string]Direction{
	"Goals":                 HigherIsBetter,
	"Assists":               HigherIsBetter,
	"Shots":                 HigherIsBetter,
	"Hits":                  HigherIsBetter,
	"Blocks":                HigherIsBetter,
	"Wins":                  HigherIsBetter,
	"Saves":                 HigherIsBetter,
	"Shutouts":              HigherIsBetter,
	"Power Play Points":     HigherIsBetter,
	"Faceoff Wins":          HigherIsBetter,
	"Plus/Minus":            HigherIsBetter,
	"Penalty Minutes":       LowerIsBetter,
	"Goals Against Average": LowerIsBetter,
	"Save Percentage":       HigherIsBetter,
}

// DirectionOf returns the directionality of a category. Unknown categories
// default to HigherIsBetter.
func DirectionOf(name string) Direction {
	if d, ok := directions[name]; ok {
		return d
	}
	return HigherIsBetter
}

// Known reports whether name is part of the known category universe.
func Known(name string) bool {
	_, ok := directions[name]
	return ok
}

// Info describes one category for listing purposes.
type Info struct {
	Name          string `json:"name"`
	LowerIsBetter bool   `json:"lower_is_better"`
}

// All returns the known category universe sorted by name.
func All() []Info {
	out := make([]Info, 0, len(directions))
	for name, d := range directions {
		out = append(out, Info{Name: name, LowerIsBetter: d == LowerIsBetter})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Weights maps a category name to its linear scoring weight.
type Weights map[string]float64

// UnitWeights builds a Weights mapping with weight 1 for every selected
// category. Category-counting leagues score each category equally.
func UnitWeights(selected []string) Weights {
	w := make(Weights, len(selected))
	for _, name := range selected {
		w[name] = 1
	}
	return w
}

// Names returns the weighted category names in sorted order. Simulation
// traversal uses this so results are deterministic for a fixed seed.
func (w Weights) Names() []string {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
