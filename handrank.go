package pokercore

// HandRank is a 32-bit, totally ordered poker hand rank: larger is always
// stronger, for every variant in this package (low variants invert their
// internal ordering before returning, so callers never have to special
// case them).
//
// Layout (spec.md §4.2):
//
//	bits 31-26: category weight (0-8, variant-permuted by e.g. [sixPlusWeight])
//	bits 25-0:  tiebreak numeral, base-14 digits, most significant first
//
// The tiebreak is a single radix-14 numeral over up to 5 rank "digits"
// rather than the two separately-shifted 13-bit fields spec.md §4.2
// sketches; this is an allowed implementation choice (spec.md §4.2: "the
// concrete constants are generator-defined but fixed") that keeps encoding
// and the missing-kicker rule in one place. Each digit is either 0
// ("missing", i.e. no card occupies that tiebreak position) or
// rank-index+1 (1..13). Because 0 sorts below every real rank, a hand
// short of cards always ranks at or below the same hand with a card added
// (spec.md §8.3).
type HandRank uint32

const (
	categoryShift = 26
	digitBase     = 14
)

// digits packs up to 5 rank slots (most significant first) into a single
// base-14 numeral. Slots not used by a category are left at -1 (missing).
func digits(ranks ...int) uint32 {
	var v uint32
	for _, r := range ranks {
		v = v*digitBase + uint32(r+1)
	}
	return v
}

// makeRank builds a HandRank from a category, its variant weight function,
// and its tiebreak rank slots (most significant first, -1 for missing).
func makeRank(cat HandCategory, weight func(HandCategory) uint32, ranks ...int) HandRank {
	return HandRank(weight(cat)<<categoryShift | digits(ranks...))
}

// Category extracts the standard-order category weight stored in r.
//
// This is only meaningful for ranks produced with [standardWeight]; ranks
// from variants with a permuted category order (six-plus) should compare
// numerically but should not have their raw weight reinterpreted as a
// [HandCategory] without un-permuting it first (see [SixPlusRank]'s doc).
func (r HandRank) Category() HandCategory {
	return HandCategory(r >> categoryShift)
}

// Compare returns -1, 0, or 1 as r is weaker than, equal to, or stronger
// than o.
func (r HandRank) Compare(o HandRank) int {
	switch {
	case r < o:
		return -1
	case r > o:
		return 1
	default:
		return 0
	}
}
