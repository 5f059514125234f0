package pokercore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandRankCompareTotalOrder(t *testing.T) {
	lo := makeRank(Pair, standardWeight, int(Two), int(Ace), int(King), int(Queen), -1)
	hi := makeRank(TwoPair, standardWeight, int(Three), int(Two), int(Ace), -1, -1)
	assert.Equal(t, -1, lo.Compare(hi))
	assert.Equal(t, 1, hi.Compare(lo))
	assert.Equal(t, 0, lo.Compare(lo))
}

func TestHandRankCategoryOrdersAboveTiebreak(t *testing.T) {
	// The worst four-of-a-kind must still beat the best full house.
	worstQuads := makeRank(FourOfAKind, standardWeight, int(Two), int(Three), -1, -1, -1)
	bestBoat := makeRank(FullHouse, standardWeight, int(Ace), int(King), -1, -1, -1)
	assert.True(t, worstQuads.Compare(bestBoat) > 0)
}

func TestMissingKickerSortsLowest(t *testing.T) {
	withKicker := makeRank(HighCard, standardWeight, int(Ace), int(King), int(Queen), int(Jack), int(Ten))
	missingLast := makeRank(HighCard, standardWeight, int(Ace), int(King), int(Queen), int(Jack), -1)
	assert.True(t, missingLast.Compare(withKicker) < 0)
}

func TestDigitsInjective(t *testing.T) {
	seen := map[uint32]bool{}
	for a := -1; a < NumRanks; a++ {
		for b := -1; b < NumRanks; b++ {
			d := digits(a, b)
			assert.False(t, seen[d], "collision at (%d,%d)", a, b)
			seen[d] = true
		}
	}
}
