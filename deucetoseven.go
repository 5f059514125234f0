package pokercore

import (
	"math/bits"

	"github.com/quinrank/pokercore/internal/combin"
)

// DeuceToSevenRank returns the deuce-to-seven ("Kansas City") lowball rank
// of hand (5-7 cards). Aces always play high and straights and flushes are
// recognized exactly as in standard poker, but count against the hand
// (spec.md §6.3): the nut low is 7-5-4-3-2, not the wheel, because A-2-3-4-5
// is still a straight.
//
// There is no single rank-count histogram that identifies the best 5-of-7
// selection here the way there is for [PokerRank] (straight and flush
// status depend on which cards are dropped, not just how many of each
// rank survive), so this evaluates every 5-card subset directly via
// [internal/combin] and keeps the best, rather than going through a
// generated table.
func DeuceToSevenRank(hand Hand) HandRank {
	cards := hand.Cards()
	worst := worstRawRank(standardWeight)
	for _, combo := range combin.Combinations(len(cards), 5) {
		sub := make([]Card, 5)
		for i, idx := range combo {
			sub[i] = cards[idx]
		}
		if r := classifyFiveCards(sub); r < worst {
			worst = r
		}
	}
	return invertRank(worst, standardWeight)
}

// DeuceToSevenDescribe returns a human-readable description of a
// [DeuceToSevenRank] result, e.g. "High Card, Seven-high, kickers Five,
// Four, Three, Two". [HandRank.Describe]
// cannot be used directly: DeuceToSevenRank inverts its entire packed
// rank around [worstRawRank] ([invertRank]), so r.Category() reads back
// whatever category stands opposite the hand's real one (the nut low,
// an unpaired HighCard hand, reads as StraightFlush). This recovers the
// real underlying category by undoing the inversion first (invertRank is
// its own inverse); unlike [AceToFiveDescribe], no ace-low renumbering
// applies, since aces always play high here and the digits are standard
// rank indices throughout.
func DeuceToSevenDescribe(r HandRank) string {
	raw := invertRank(r, standardWeight)
	return describeCategory(raw.Category(), uint32(raw)&tiebreakBits)
}

// classifyFiveCards computes the standard (high-poker) rank of exactly 5
// specific cards, recognizing straights and flushes.
func classifyFiveCards(cards []Card) HandRank {
	var counts [NumRanks]int
	var suits [NumSuits]uint16
	for _, c := range cards {
		counts[c.Rank()]++
		suits[c.Suit()] |= 1 << uint(c.Rank())
	}
	mask := presenceMask(counts)
	best := classifyNonFlush(counts, mask, standardWheelMask, standardWheelHigh, standardWeight, true)
	for _, sm := range suits {
		if bits.OnesCount16(sm) >= 5 {
			best = maxHandRank(best, classifyFlush(sm, standardWheelMask, standardWheelHigh, standardWeight))
		}
	}
	return best
}
