package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlopes/yahtzee/internal/score"
)

func TestTally(t *testing.T) {
	results := []score.Classification{
		{Yahtzee: true},
		{FullHouse: true, ThreeOfAKind: true},
		{},
	}

	s := Tally(results)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Counts[0], "yahtzee count")
	assert.Equal(t, 1, s.Counts[1], "full house count")
	assert.Equal(t, 0, s.Counts[4], "four of a kind count")
	assert.Equal(t, 1, s.Counts[5], "three of a kind count")
}

func TestPercent(t *testing.T) {
	s := Tally([]score.Classification{
		{Yahtzee: true},
		{},
		{},
	})
	assert.InDelta(t, 33.333333, s.Percent(0), 0.0001)
	assert.Zero(t, s.Percent(1))
}

func TestPercentZeroGames(t *testing.T) {
	var s Summary
	assert.Zero(t, s.Percent(0))
}

func TestRender(t *testing.T) {
	s := Tally([]score.Classification{
		{Yahtzee: true},
		{FullHouse: true, ThreeOfAKind: true},
		{LowStraight: true},
	})

	var buf bytes.Buffer
	s.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "In 3 games, you rolled:")
	assert.Contains(t, out, "Yahtzee: 1 (33.33%)")
	assert.Contains(t, out, "Full House: 1 (33.33%)")
	assert.Contains(t, out, "Low Straight: 1 (33.33%)")
	assert.Contains(t, out, "High Straight: 0 (0.00%)")
	assert.Contains(t, out, "Four Of A Kind: 0 (0.00%)")
	assert.Contains(t, out, "Three Of A Kind: 1 (33.33%)")
}

func TestRenderNoGames(t *testing.T) {
	var buf bytes.Buffer
	Summary{}.Render(&buf)
	assert.Equal(t, "No games played.\n", buf.String())
}
