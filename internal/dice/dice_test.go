package dice

import "testing"

func TestRollBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		hand := Roll()
		if len(hand) != HandSize {
			t.Fatalf("expected %d dice, got %d", HandSize, len(hand))
		}
		for _, v := range hand {
			if v < 1 || v > Sides {
				t.Errorf("roll out of bounds for d6: %d", v)
			}
		}
	}
}

func TestRollUsesMockQueue(t *testing.T) {
	MockDice([]int{1, 2, 3, 4, 5})
	defer ResetMockDice()

	hand := Roll()
	want := []int{1, 2, 3, 4, 5}
	for i, v := range want {
		if hand[i] != v {
			t.Errorf("position %d: expected %d, got %d", i, v, hand[i])
		}
	}
}

func TestRerollReplacesOnlyListedPositions(t *testing.T) {
	MockDice([]int{6, 6})
	defer ResetMockDice()

	hand := []int{1, 2, 3, 4, 5}
	Reroll(hand, []int{0, 4})

	if hand[0] != 6 || hand[4] != 6 {
		t.Errorf("expected positions 0 and 4 replaced with 6, got %v", hand)
	}
	if hand[1] != 2 || hand[2] != 3 || hand[3] != 4 {
		t.Errorf("untouched positions changed: %v", hand)
	}
}

func TestRerollDuplicatePositionDrawsTwice(t *testing.T) {
	MockDice([]int{2, 6})
	defer ResetMockDice()

	hand := []int{1, 1, 1, 1, 1}
	Reroll(hand, []int{3, 3})

	if hand[3] != 6 {
		t.Errorf("expected last draw to win on duplicate position, got %d", hand[3])
	}
}

func TestRerollIgnoresOutOfRangePositions(t *testing.T) {
	hand := []int{1, 2, 3, 4, 5}
	Reroll(hand, []int{-1, 7})

	want := []int{1, 2, 3, 4, 5}
	for i, v := range want {
		if hand[i] != v {
			t.Errorf("position %d changed: expected %d, got %d", i, v, hand[i])
		}
	}
}
