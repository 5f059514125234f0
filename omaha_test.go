package pokercore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOmahaRankEqualsBruteForce60(t *testing.T) {
	hole := mustHand(t, "AcAdKsKc")
	board := mustHand(t, "4h5h7cQsQd")
	got := OmahaRank(hole, board)

	holeCards, boardCards := hole.Cards(), board.Cards()
	var want HandRank
	first := true
	for i := 0; i < len(holeCards); i++ {
		for j := i + 1; j < len(holeCards); j++ {
			for a := 0; a < len(boardCards); a++ {
				for b := a + 1; b < len(boardCards); b++ {
					for c := b + 1; c < len(boardCards); c++ {
						h, err := NewHand(holeCards[i], holeCards[j], boardCards[a], boardCards[b], boardCards[c])
						require.NoError(t, err)
						r := PokerRank(h)
						if first || r > want {
							want, first = r, false
						}
					}
				}
			}
		}
	}
	assert.Equal(t, want, got)
}

func TestOmahaHiLoQualifyingLow(t *testing.T) {
	hole := mustHand(t, "AcAd2s3s")
	board := mustHand(t, "4h5h7cKsQs")
	hi, lo := OmahaHiLoRank(hole, board)

	assert.Equal(t, Pair, hi.Category()) // the pair of aces in the hole; the board is unpaired
	require.True(t, lo.Qualifies)        // Ac2s + 4h5h7c makes the best qualifying low, 7-5-4-2-A
}

func TestOmahaHiLoNoQualifier(t *testing.T) {
	hole := mustHand(t, "AcAdKsKc")
	board := mustHand(t, "QhQdJcTsTd")
	_, lo := OmahaHiLoRank(hole, board)
	assert.False(t, lo.Qualifies)
}
