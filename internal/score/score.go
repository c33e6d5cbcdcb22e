package score

import "sort"

// Classification reports which scoring categories a finalized hand satisfies.
// Categories are not mutually exclusive: a full house also counts as three of
// a kind, and the 2-3-4-5-6 high straight is a low straight too, because each
// check looks at the per-die multiplicity list or distinct-value window on its
// own.
type Classification struct {
	Yahtzee      bool
	FullHouse    bool
	LowStraight  bool
	HighStraight bool
	FourOfAKind  bool
	ThreeOfAKind bool
}

// NumCategories is the number of scoring categories.
const NumCategories = 6

// Names lists the category display names in report order.
var Names = [NumCategories]string{
	"Yahtzee",
	"Full House",
	"Low Straight",
	"High Straight",
	"Four Of A Kind",
	"Three Of A Kind",
}

// Flags returns the category booleans in the same order as Names.
func (c Classification) Flags() [NumCategories]bool {
	return [NumCategories]bool{
		c.Yahtzee,
		c.FullHouse,
		c.LowStraight,
		c.HighStraight,
		c.FourOfAKind,
		c.ThreeOfAKind,
	}
}

// Classify evaluates a finalized hand of five dice against every scoring
// category. The hand must hold exactly five values in [1,6]; that is the
// caller's contract, not checked here.
//
// The full house check is deliberately permissive: it only requires that a
// 3-count and a 2-count both appear in the multiplicity list, and the straight
// checks window over the lowest distinct values. Both quirks are part of the
// scoring contract.
func Classify(hand []int) Classification {
	// Per-die multiplicity: counts[i] is how many dice share hand[i]'s value.
	counts := make([]int, len(hand))
	for i, v := range hand {
		for _, w := range hand {
			if w == v {
				counts[i]++
			}
		}
	}

	hasCount := func(n int) bool {
		for _, c := range counts {
			if c == n {
				return true
			}
		}
		return false
	}

	seen := make(map[int]bool, len(hand))
	distinct := make([]int, 0, len(hand))
	for _, v := range hand {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Ints(distinct)

	c := Classification{
		Yahtzee:      hasCount(5),
		FourOfAKind:  hasCount(4),
		ThreeOfAKind: hasCount(3),
	}
	c.FullHouse = c.ThreeOfAKind && hasCount(2)

	// Low straight looks only at the lowest four distinct values.
	if len(distinct) >= 4 {
		c.LowStraight = distinct[3]-distinct[0] == 3
	}
	if len(distinct) == 5 {
		c.HighStraight = distinct[4]-distinct[0] == 4
	}
	return c
}
