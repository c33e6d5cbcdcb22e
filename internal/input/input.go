// Package input parses the raw reroll selections typed by a player.
package input

import "strings"

// ParseSelection validates a raw reroll selection and converts it to
// zero-based die indices.
//
// Commas and whitespace are stripped first; every remaining character must be
// a single digit in [1,5]. The check is per character, so multi-digit
// positions like "10" are invalid by contract. Duplicate digits are preserved
// in input order. An empty selection is valid and means no dice are replaced.
//
// Invalid input yields (false, nil); the caller is expected to re-prompt.
func ParseSelection(raw string) (bool, []int) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, raw)

	indices := make([]int, 0, len(cleaned))
	for _, ch := range cleaned {
		if ch < '1' || ch > '5' {
			return false, nil
		}
		indices = append(indices, int(ch-'1'))
	}
	return true, indices
}
