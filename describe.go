package pokercore

import "fmt"

// tiebreakBits masks off the tiebreak numeral, discarding the category
// weight.
const tiebreakBits = 1<<categoryShift - 1

// decodeDigits unpacks an n-digit base-14 tiebreak numeral back into rank
// indices (-1 for "missing"), most significant first. Only the n lowest
// digits of v are read.
func decodeDigits(v uint32, n int) []int {
	out := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = int(v%digitBase) - 1
		v /= digitBase
	}
	return out
}

var rankWords = [NumRanks]string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

func rankName(ord int) string {
	if ord < 0 || ord >= NumRanks {
		return "?"
	}
	return rankWords[ord]
}

// plural returns the plural of a rank name ("Sixes", "Kings").
func plural(name string) string {
	if name == "Six" {
		return "Sixes"
	}
	return name + "s"
}

// Describe returns a human-readable description of r, in the style of
// "Full House, Sixes full of Fours" (grounded on cardrank-cardrank's
// Hand.Description).
//
// Describe assumes r was produced under standard category order
// ([HandRank.Category]). It is wrong for anything that inverts or
// permutes that layout before returning:
//
//   - [SixPlusRank]: the top bits hold [sixPlusWeight]'s permuted value,
//     which Category reads back as a different, unrelated category, so
//     the digit count this picks (1 for a straight, 5 otherwise) can be
//     wrong too. Use [SixPlusDescribe].
//   - [AceToFiveRank] and [DeuceToSevenRank]: both invert their entire
//     packed rank around [worstRawRank] ([invertRank]), which maps every
//     category to a different one (Pair <-> FourOfAKind, TwoPair <->
//     FullHouse, ThreeOfAKind <-> Flush; Straight is self-inverse) and
//     scrambles the digits along with it. Use [AceToFiveDescribe] and
//     [DeuceToSevenDescribe].
//   - [BadugiRank]/[BaduciRank]: the top bits hold a cardinality, not a
//     category at all. Use [DescribeBadugi].
func (r HandRank) Describe() string {
	return describeCategory(r.Category(), uint32(r)&tiebreakBits)
}

// describeCategory renders cat's tiebreak digits packed into v, naming
// ranks with the standard rank index ([rankName]). Splitting this out of
// [HandRank.Describe] lets [SixPlusDescribe] supply the corrected raw
// category separately from r.Category()'s permuted read.
func describeCategory(cat HandCategory, v uint32) string {
	return describeCategoryNamed(cat, v, rankName)
}

// describeCategoryNamed is [describeCategory] generalized over how a
// decoded digit's ordinal maps to a displayed rank name. [AceToFiveDescribe]
// needs this: its digits are packed using [aceLowOrdinal]'s renumbering
// (Ace sorts as ordinal 0), not the standard rank index [rankName]
// assumes, so it supplies a name function that un-renumbers via
// [aceLowOrdinalRank] first.
func describeCategoryNamed(cat HandCategory, v uint32, name func(int) string) string {
	// Every category's tiebreak is packed as 5 digits (unused trailing
	// slots are -1) except Straight and StraightFlush, which [bestfive.go]
	// packs as a single high-card digit when it beats the count-pattern
	// category outright.
	if cat == Straight || cat == StraightFlush {
		d := decodeDigits(v, 1)
		if cat == StraightFlush {
			return fmt.Sprintf("Straight Flush, %s-high", name(d[0]))
		}
		return fmt.Sprintf("Straight, %s-high", name(d[0]))
	}
	d := decodeDigits(v, 5)
	switch cat {
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s, kicker %s", plural(name(d[0])), name(d[1]))
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", plural(name(d[0])), plural(name(d[1])))
	case Flush:
		return fmt.Sprintf("Flush, %s-high", name(d[0]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s, kickers %s, %s", plural(name(d[0])), name(d[1]), name(d[2]))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s over %s, kicker %s", plural(name(d[0])), plural(name(d[1])), name(d[2]))
	case Pair:
		return fmt.Sprintf("Pair, %s, kickers %s, %s, %s", plural(name(d[0])), name(d[1]), name(d[2]), name(d[3]))
	default:
		return fmt.Sprintf("High Card, %s-high, kickers %s, %s, %s, %s", name(d[0]), name(d[1]), name(d[2]), name(d[3]), name(d[4]))
	}
}

// String satisfies the [fmt.Stringer] interface.
func (r HandRank) String() string {
	return r.Describe()
}
