package pokercore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quinrank/pokercore/internal/combin"
)

// BadugiRank returns the badugi rank of hand (0-7 cards). A badugi
// subset is up to 4 cards of all-distinct suits and all-distinct ranks;
// more cards always beats fewer, and within equal size the
// lexicographically smallest descending-rank set wins (spec.md §4.9).
// Aces play high.
func BadugiRank(hand Hand) HandRank {
	return badugiRank(hand, standardOrdinal)
}

// BaduciRank is [BadugiRank] with aces playing low, per spec.md §4.9.
func BaduciRank(hand Hand) HandRank {
	return badugiRank(hand, aceLowOrdinal)
}

// badugiMaxDigits is the packed digit value of the worst possible
// (highest-ranked) 4-card subset, used to invert the "smaller is better"
// rank-lowness comparison into HandRank's "larger is stronger" convention.
var badugiMaxDigits = digits(NumRanks-1, NumRanks-1, NumRanks-1, NumRanks-1)

// badugiRank finds, among every distinct-suit distinct-rank subset of
// hand's cards, the largest cardinality that has at least one such
// subset, then the lowest (best) rank-digit sequence at that cardinality.
func badugiRank(hand Hand, ordinal [NumRanks]int) HandRank {
	cards := hand.Cards()
	n := len(cards)

	for k := min(4, n); k >= 1; k-- {
		best := uint32(0)
		found := false
		for _, combo := range combin.Combinations(n, k) {
			sub := make([]Card, k)
			for i, idx := range combo {
				sub[i] = cards[idx]
			}
			if !distinctSuitsAndRanks(sub) {
				continue
			}
			ords := make([]int, k)
			for i, c := range sub {
				ords[i] = ordinal[c.Rank()]
			}
			sort.Sort(sort.Reverse(sort.IntSlice(ords)))
			var slots [4]int
			for i := range slots {
				slots[i] = -1
			}
			copy(slots[:], ords)
			d := digits(slots[0], slots[1], slots[2], slots[3])
			if !found || d < best {
				best = d
				found = true
			}
		}
		if found {
			return HandRank(uint32(k)<<categoryShift | (badugiMaxDigits - best))
		}
	}
	return 0
}

// ordinalRank inverts an ordinal numbering (rank index -> ordinal) into
// ordinal -> [Rank], so [DescribeBadugi] can turn a badugi rank's digits
// back into the ranks that produced them.
func ordinalRank(ordinal [NumRanks]int) [NumRanks]Rank {
	var inv [NumRanks]Rank
	for r, ord := range ordinal {
		inv[ord] = Rank(r)
	}
	return inv
}

var (
	standardOrdinalRank = ordinalRank(standardOrdinal)
	aceLowOrdinalRank   = ordinalRank(aceLowOrdinal)
)

// DescribeBadugi returns a human-readable description of a [BadugiRank]
// or [BaduciRank] result, e.g. "4-card badugi, A T 7 2" (only ranks:
// badugiRank's packed digits don't carry suits, though by construction a
// 4-card badugi has one of each). aceLow selects [BaduciRank]'s ordinal
// numbering when decoding the digits back into ranks, and must match
// whichever of the two produced r.
//
// [HandRank.Describe] cannot be used for a badugi/baduci rank: its top
// bits hold a cardinality (0-4), not a [HandCategory] (badugiRank's
// `uint32(k)<<categoryShift`, not [makeRank]'s weight(cat)), so Describe
// would read a nonsense category (e.g. 4 decodes as Straight) and
// pick the wrong digit layout entirely.
func DescribeBadugi(r HandRank, aceLow bool) string {
	k := int(r >> categoryShift)
	if k == 0 {
		return "no badugi"
	}
	inv := standardOrdinalRank
	if aceLow {
		inv = aceLowOrdinalRank
	}
	stored := uint32(r) & tiebreakBits
	ords := decodeDigits(badugiMaxDigits-stored, 4)
	names := make([]string, 0, k)
	for _, ord := range ords[:k] {
		names = append(names, inv[ord].String())
	}
	return fmt.Sprintf("%d-card badugi, %s", k, strings.Join(names, " "))
}

// distinctSuitsAndRanks reports whether cards has no repeated suit and no
// repeated rank.
func distinctSuitsAndRanks(cards []Card) bool {
	var seenSuits, seenRanks uint16
	for _, c := range cards {
		sb := uint16(1) << uint(c.Suit())
		rb := uint16(1) << uint(c.Rank())
		if seenSuits&sb != 0 || seenRanks&rb != 0 {
			return false
		}
		seenSuits |= sb
		seenRanks |= rb
	}
	return true
}
