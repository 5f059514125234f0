package pokercore

// AceToFiveRank returns the ace-to-five lowball rank of the best 5-card
// hand contained in hand (0-7 cards). Aces play low and straights and
// flushes are never recognized (a wheel is simply five unpaired low
// cards), so the only categories that can appear are HighCard through
// FourOfAKind (spec.md §6.2). Lower standard-order hands are better, so
// the result is the standard classification inverted: larger [HandRank]
// still means stronger, i.e. a better low.
func AceToFiveRank(hand Hand) HandRank {
	counts := ordinalCounts(hand.RankCounts(), aceLowOrdinal)
	raw := aceToFiveTables.lookupNonFlush(counts)
	return invertRank(raw, standardWeight)
}

// worstRawRank is the largest value [makeRank] can ever produce under
// weight: the top category with every tiebreak digit maxed out. Low
// variants invert around this so the total order flips while staying
// within HandRank's range.
func worstRawRank(weight func(HandCategory) uint32) HandRank {
	return makeRank(StraightFlush, weight, NumRanks-1, NumRanks-1, NumRanks-1, NumRanks-1, NumRanks-1)
}

// invertRank flips a standard-order rank into a low-order one: the
// strongest standard hand becomes the weakest low hand and vice versa.
// It is its own inverse (worst-(worst-r) == r), which [AceToFiveDescribe]
// and [DeuceToSevenDescribe] rely on to recover the pre-inversion rank.
func invertRank(r HandRank, weight func(HandCategory) uint32) HandRank {
	return worstRawRank(weight) - r
}

// aceLowRankName names an ace-low-ordinal digit (see [aceLowOrdinal]):
// ordinal 0 is Ace, not Two, unlike [rankName]'s standard numbering.
func aceLowRankName(ord int) string {
	if ord < 0 {
		return "?"
	}
	return rankName(int(aceLowOrdinalRank[ord]))
}

// AceToFiveDescribe returns a human-readable description of an
// [AceToFiveRank] result, e.g. "Pair, Twos, kickers Five, Four, Three".
// [HandRank.Describe] cannot be used directly: AceToFiveRank inverts its
// entire packed rank around [worstRawRank] ([invertRank]), which swaps
// categories (a low pair packs as FourOfAKind's bit pattern) and packs
// its digits in ace-low ordinal order, not standard rank order. This
// undoes the inversion first (invertRank is its own inverse) and names
// digits with [aceLowRankName].
func AceToFiveDescribe(r HandRank) string {
	raw := invertRank(r, standardWeight)
	return describeCategoryNamed(raw.Category(), uint32(raw)&tiebreakBits, aceLowRankName)
}
