package pokercore

import "math/bits"

// SixPlusRank returns the short-deck ("six-plus") rank of the best 5-card
// hand contained in hand, for a 36-card deck (Six through Ace; hand must
// not contain Two-Five). A flush beats a full house and three of a kind
// beats a straight, the reverse of standard order, because removing the
// low ranks makes a flush harder to make than a boat and a straight
// easier to make than trips (spec.md §6.6, [sixPlusWeight]).
//
// Use [SixPlusCategory], not [HandRank.Category], to recover the actual
// category from a rank this function returns: the stored weight is
// sixPlusWeight's permuted value, and HandRank.Category reads it back
// assuming standard order.
func SixPlusRank(hand Hand) HandRank {
	counts := hand.RankCounts()
	var ordCounts [NumRanks]int
	for r, n := range counts {
		ordCounts[r] = int(n)
	}
	best := sixPlusTables.lookupNonFlush(ordCounts)
	for _, mask := range hand.SuitMasks() {
		if bits.OnesCount16(mask) >= 5 {
			best = maxHandRank(best, sixPlusTables.lookupFlush(mask))
		}
	}
	return best
}

// SixPlusCategory recovers the true [HandCategory] from a rank produced
// by [SixPlusRank], reversing sixPlusWeight's permutation (an involution,
// so applying it a second time undoes it).
func SixPlusCategory(r HandRank) HandCategory {
	return HandCategory(sixPlusWeight(r.Category()))
}

// SixPlusDescribe returns a human-readable description of a [SixPlusRank]
// result, decoding its tiebreak digits against the true, un-permuted
// category from [SixPlusCategory] rather than [HandRank.Describe]'s
// standard-order read (which would pick the wrong digit layout: e.g. a
// six-plus Flush stores under Flush's weight, which standard order
// assigns to FullHouse, a 2-digit layout, so Describe would misdecode its
// 5 flush-kicker digits as a trip-and-pair pattern).
func SixPlusDescribe(r HandRank) string {
	return describeCategory(SixPlusCategory(r), uint32(r)&tiebreakBits)
}
