package pokercore

// This file is the reference classifier: a direct, non-table-driven
// computation of a hand's category and tiebreak ranks from a rank-count
// histogram (ignoring suits) or a flush-suit rank mask. It exists to give
// [tables.go]'s generator something to enumerate against; evaluation at
// runtime goes through the generated perfect-hash tables instead (see
// poker.go, acetofive.go, sixplus.go), except for deucetoseven.go, which
// never gets a table and calls classifyNonFlush and classifyFlush directly
// on each 5-card subset. badugi.go ranks its subsets without this file.

// ordinalCounts re-buckets a standard [NumRanks]-indexed occupancy count
// by an arbitrary ordinal numbering, used to give Ace a different position
// for ace-to-five (see aceLowOrdinal in signature.go).
func ordinalCounts(counts [NumRanks]uint8, ordinal [NumRanks]int) [NumRanks]int {
	var out [NumRanks]int
	for r, n := range counts {
		out[ordinal[r]] = int(n)
	}
	return out
}

// classifyCounts determines the hand category and tiebreak ranks from a
// 13-slot occupancy histogram indexed by some ordinal numbering (standard
// rank index, or a variant's re-numbering), ignoring straights and flushes
// entirely. counts must sum to between 0 and 7; an empty histogram
// classifies as HighCard with every slot missing.
//
// Every category's kicker slots are filled greedily from the highest
// ordinal among the "other present" ranks, which is what correctly
// demotes a second pair to a kicker, a second three-of-a-kind to the
// full-house's pair, and so on, without needing to special-case 6- and
// 7-card inputs.
func classifyCounts(counts [NumRanks]int) (HandCategory, [5]int) {
	var present, quads, trips, pairs []int
	for ord := NumRanks - 1; ord >= 0; ord-- {
		switch counts[ord] {
		case 4:
			quads = append(quads, ord)
			present = append(present, ord)
		case 3:
			trips = append(trips, ord)
			present = append(present, ord)
		case 2:
			pairs = append(pairs, ord)
			present = append(present, ord)
		case 1:
			present = append(present, ord)
		}
	}

	other := func(n int, exclude ...int) [5]int {
		var out [5]int
		for i := range out {
			out[i] = -1
		}
		i := 0
	outer:
		for _, ord := range present {
			for _, ex := range exclude {
				if ord == ex {
					continue outer
				}
			}
			if i >= n {
				break
			}
			out[i] = ord
			i++
		}
		return out
	}

	switch {
	case len(quads) > 0:
		k := other(1, quads[0])
		return FourOfAKind, [5]int{quads[0], k[0], -1, -1, -1}
	case len(trips) >= 1:
		tripRank := trips[0]
		pairCandidates := append(append([]int{}, trips[1:]...), pairs...)
		bestPair := -1
		for _, ord := range pairCandidates {
			if ord > bestPair {
				bestPair = ord
			}
		}
		if bestPair >= 0 {
			return FullHouse, [5]int{tripRank, bestPair, -1, -1, -1}
		}
		k := other(2, tripRank)
		return ThreeOfAKind, [5]int{tripRank, k[0], k[1], -1, -1}
	case len(pairs) >= 2:
		k := other(1, pairs[0], pairs[1])
		return TwoPair, [5]int{pairs[0], pairs[1], k[0], -1, -1}
	case len(pairs) == 1:
		k := other(3, pairs[0])
		return Pair, [5]int{pairs[0], k[0], k[1], k[2], -1}
	default:
		k := other(5)
		return HighCard, k
	}
}

// straightHigh returns the ordinal of the straight's highest card and true
// if mask (a 13-bit set of present ordinals) contains 5 consecutive
// ordinals, checking the variant's low-straight wheel last.
func straightHigh(mask uint16, wheelMask uint16, wheelHigh int) (int, bool) {
	for top := NumRanks - 1; top >= 4; top-- {
		run := uint16(0x1f) << uint(top-4)
		if mask&run == run {
			return top, true
		}
	}
	if wheelMask != 0 && mask&wheelMask == wheelMask {
		return wheelHigh, true
	}
	return 0, false
}

// topNMask returns the n highest set ordinals in mask, most significant
// first, padded with -1.
func topNMask(mask uint16, n int) [5]int {
	var out [5]int
	for i := range out {
		out[i] = -1
	}
	i := 0
	for ord := NumRanks - 1; ord >= 0 && i < n; ord-- {
		if mask&(1<<uint(ord)) != 0 {
			out[i] = ord
			i++
		}
	}
	return out
}

// maxHandRank returns the stronger of a and b.
func maxHandRank(a, b HandRank) HandRank {
	if a >= b {
		return a
	}
	return b
}

// classifyNonFlush computes the best-5 rank (ignoring suits entirely) for
// a histogram of 0-7 cards, layering straight detection from presenceMask
// on top of classifyCounts. weight supplies the variant's category
// ordering (standardWeight or sixPlusWeight). checkStraight is false for
// ace-to-five, which doesn't recognize straights at all (spec.md §6.2).
func classifyNonFlush(counts [NumRanks]int, presenceMask uint16, wheelMask uint16, wheelHigh int, weight func(HandCategory) uint32, checkStraight bool) HandRank {
	cat, ranks := classifyCounts(counts)
	best := makeRank(cat, weight, ranks[0], ranks[1], ranks[2], ranks[3], ranks[4])
	if checkStraight {
		if high, ok := straightHigh(presenceMask, wheelMask, wheelHigh); ok {
			best = maxHandRank(best, makeRank(Straight, weight, high))
		}
	}
	return best
}

// classifyFlush computes the best-5 rank for a single suit's rank mask
// (5-7 bits set), recognizing straight flushes.
func classifyFlush(mask uint16, wheelMask uint16, wheelHigh int, weight func(HandCategory) uint32) HandRank {
	if high, ok := straightHigh(mask, wheelMask, wheelHigh); ok {
		return makeRank(StraightFlush, weight, high)
	}
	r := topNMask(mask, 5)
	return makeRank(Flush, weight, r[0], r[1], r[2], r[3], r[4])
}
