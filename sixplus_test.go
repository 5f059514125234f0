package pokercore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSixPlusFlushBeatsFullHouse(t *testing.T) {
	boat := mustHand(t, "AhAdAsKcKd")
	flush := mustHand(t, "6c8cTcQcAc")
	assert.True(t, SixPlusRank(flush).Compare(SixPlusRank(boat)) > 0)
}

func TestSixPlusThreeOfAKindBeatsStraight(t *testing.T) {
	straight := mustHand(t, "6c7d8h9sTc")
	trips := mustHand(t, "6c6d6h8s9c")
	assert.True(t, SixPlusRank(trips).Compare(SixPlusRank(straight)) > 0)
}

func TestSixPlusStraightFlushBeatsQuads(t *testing.T) {
	quads := mustHand(t, "AcAdAhAsKc")
	sf := mustHand(t, "6c7c8c9cTc")
	assert.True(t, SixPlusRank(sf).Compare(SixPlusRank(quads)) > 0)
}

func TestSixPlusLowStraightIsWheel(t *testing.T) {
	lowStraight := mustHand(t, "Ac6d7h8s9c")
	assert.Equal(t, Straight, SixPlusCategory(SixPlusRank(lowStraight)))
}

func TestSixPlusHandlesFewerThanFiveCards(t *testing.T) {
	empty := SixPlusRank(0)
	one := SixPlusRank(mustHand(t, "Ac"))
	four := SixPlusRank(mustHand(t, "AcKdQhJs"))
	five := SixPlusRank(mustHand(t, "AcKdQhJsTh"))
	assert.True(t, empty.Compare(one) <= 0)
	assert.True(t, one.Compare(four) <= 0)
	assert.True(t, four.Compare(five) <= 0)
}

func TestSixPlusCategoryUnpermutesWeight(t *testing.T) {
	trips := mustHand(t, "6c6d6h8s9c")
	assert.Equal(t, ThreeOfAKind, SixPlusCategory(SixPlusRank(trips)))
}

func TestSixPlusDescribeDecodesFlushNotFullHouse(t *testing.T) {
	// A flush stores under sixPlusWeight's FullHouse-valued weight, so
	// r.Category() misreads it as FullHouse (a 2-digit layout) when the
	// packed digits are actually Flush's 5-digit top-cards layout.
	// SixPlusDescribe must pick the 5-digit layout and the Flush label.
	flush := SixPlusRank(mustHand(t, "6c8cTcQcAc"))
	assert.Equal(t, FullHouse, flush.Category())
	assert.Equal(t, "Flush, Ace-high", SixPlusDescribe(flush))
}
