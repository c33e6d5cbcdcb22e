// Package stats aggregates classified game results into per-category tallies
// and renders the end-of-session report.
package stats

import (
	"fmt"
	"io"

	"github.com/mlopes/yahtzee/internal/score"
)

// Summary holds per-category totals for a sequence of classified games.
type Summary struct {
	Total  int
	Counts [score.NumCategories]int
}

// Tally folds a sequence of classifications into a Summary.
func Tally(results []score.Classification) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		for i, hit := range r.Flags() {
			if hit {
				s.Counts[i]++
			}
		}
	}
	return s
}

// Percent returns the share of games that hit category i, in percent.
// Zero when no games were recorded.
func (s Summary) Percent(i int) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Counts[i]) / float64(s.Total) * 100
}

// Render writes the human-readable report: the total game count followed by
// one line per category, in fixed order, with the percentage to two decimals.
// An empty summary prints a placeholder instead of dividing by zero.
func (s Summary) Render(w io.Writer) {
	if s.Total == 0 {
		fmt.Fprintln(w, "No games played.")
		return
	}
	fmt.Fprintf(w, "In %d games, you rolled:\n", s.Total)
	for i, name := range score.Names {
		fmt.Fprintf(w, "%s: %d (%.2f%%)\n", name, s.Counts[i], s.Percent(i))
	}
}
