package pokercore

import "math/bits"

// PokerRank returns the standard high-poker rank of the best 5-card hand
// contained in hand, which may have between 0 and 7 cards; with fewer than
// 5, the missing positions rank as the worst possible kickers. Larger
// [HandRank] values are stronger.
//
// Evaluation goes through the two perfect-hash tables built at package
// init (tables.go): a rank-count histogram lookup for the best non-flush
// hand, and, for any suit holding 5 or more cards, a rank-mask lookup for
// the best flush or straight flush. The stronger of the two wins, mirroring
// lox-pokerforbots' evaluator.go split between its quinary and flush
// lookup paths.
func PokerRank(hand Hand) HandRank {
	counts := hand.RankCounts()
	var ordCounts [NumRanks]int
	for r, n := range counts {
		ordCounts[r] = int(n)
	}
	best := standardTables.lookupNonFlush(ordCounts)
	for _, mask := range hand.SuitMasks() {
		if bits.OnesCount16(mask) >= 5 {
			best = maxHandRank(best, standardTables.lookupFlush(mask))
		}
	}
	return best
}
