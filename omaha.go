package pokercore

import "github.com/quinrank/pokercore/internal/combin"

// holeCombos and boardCombos are the fixed 2-of-4 and 3-of-5 index
// combinations every Omaha evaluation reuses: 6 and 10 respectively, built
// once via [internal/combin] rather than recomputed per call.
var (
	holeCombos  = combin.Combinations(4, 2)
	boardCombos = combin.Combinations(5, 3)
)

// OmahaRank returns the high-poker rank of the best Omaha hand: hole must
// have exactly 4 cards and board exactly 5 (undefined behavior otherwise,
// per spec.md §6). A valid 5-card hand takes exactly 2 cards from hole and
// exactly 3 from board; this enumerates all 6x10 = 60 such combinations
// and keeps the strongest (spec.md §4.10).
func OmahaRank(hole, board Hand) HandRank {
	holeCards := hole.Cards()
	boardCards := board.Cards()
	var best HandRank
	first := true
	for _, hc := range holeCombos {
		for _, bc := range boardCombos {
			h := combine(holeCards, hc, boardCards, bc)
			r := PokerRank(h)
			if first || r > best {
				best = r
				first = false
			}
		}
	}
	return best
}

// OmahaLoResult is the low half of an Omaha Hi-Lo evaluation.
type OmahaLoResult struct {
	Rank      HandRank
	Qualifies bool
}

// OmahaHiLoRank returns the high rank (as [OmahaRank]) and, if any of the
// 60 combinations qualifies (5 distinct ranks, all eight or lower, ace
// playing low), the best ace-to-five low rank among qualifiers (spec.md
// §4.10, §8.4).
func OmahaHiLoRank(hole, board Hand) (hi HandRank, lo OmahaLoResult) {
	holeCards := hole.Cards()
	boardCards := board.Cards()
	firstHi, firstLo := true, true
	for _, hc := range holeCombos {
		for _, bc := range boardCombos {
			h := combine(holeCards, hc, boardCards, bc)
			if r := PokerRank(h); firstHi || r > hi {
				hi, firstHi = r, false
			}
			if !qualifiesEightOrBetter(h) {
				continue
			}
			if r := AceToFiveRank(h); firstLo || r > lo.Rank {
				lo.Rank, firstLo = r, false
			}
		}
	}
	lo.Qualifies = !firstLo
	return hi, lo
}

// combine builds a 5-card Hand from holeCards[holeIdx] and
// boardCards[boardIdx]. Errors are impossible here: the indices come from
// [internal/combin] over the caller's own card slices, so duplicates and
// out-of-range access can't occur.
func combine(holeCards []Card, holeIdx []int, boardCards []Card, boardIdx []int) Hand {
	var h Hand
	for _, i := range holeIdx {
		h = h.Insert(holeCards[i])
	}
	for _, i := range boardIdx {
		h = h.Insert(boardCards[i])
	}
	return h
}

// qualifiesEightOrBetter reports whether the 5 cards in h have distinct
// ranks that are all eight-or-lower with the ace playing low (spec.md
// §4.10).
func qualifiesEightOrBetter(h Hand) bool {
	counts := h.RankCounts()
	for r, n := range counts {
		if n == 0 {
			continue
		}
		if n > 1 {
			return false
		}
		if aceLowOrdinal[r]+1 > 8 {
			return false
		}
	}
	return true
}
