package dice

import (
	"crypto/rand"
	"math/big"
)

const (
	// HandSize is the number of dice in a hand.
	HandSize = 5
	// Sides is the number of faces on each die.
	Sides = 6
)

var mockDiceQueue []int

// MockDice prepares a sequence of deterministic results for the next draws
func MockDice(results []int) {
	mockDiceQueue = results
}

// ResetMockDice clears the deterministic queue
func ResetMockDice() {
	mockDiceQueue = nil
}

// safeRand fetches a strongly uniform random integer via crypto/rand
func safeRand(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64()) + 1 // Convert 0-(Max-1) to 1-Max
}

func draw() int {
	if len(mockDiceQueue) > 0 {
		val := mockDiceQueue[0]
		mockDiceQueue = mockDiceQueue[1:]
		return val
	}
	return safeRand(Sides)
}

// Roll produces a fresh hand of five independent uniform dice in [1,6].
func Roll() []int {
	hand := make([]int, HandSize)
	for i := range hand {
		hand[i] = draw()
	}
	return hand
}

// Reroll replaces the die at each listed zero-based position with a fresh
// draw, in order. A position repeated in the list draws again; the last draw
// wins. Positions outside the hand are ignored.
func Reroll(hand []int, positions []int) {
	for _, p := range positions {
		if p < 0 || p >= len(hand) {
			continue
		}
		hand[p] = draw()
	}
}
