package pokercore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeuceToSevenNutLow(t *testing.T) {
	nut := mustHand(t, "2c3d4h5s7c")
	paired := mustHand(t, "2c2d4h5s7c")
	assert.True(t, DeuceToSevenRank(nut).Compare(DeuceToSevenRank(paired)) > 0)
}

func TestDeuceToSevenFlushIsWorseThanOffsuit(t *testing.T) {
	offsuit := mustHand(t, "2c3d4h5s7c")
	flush := mustHand(t, "2c3c4c5c7c")
	assert.True(t, DeuceToSevenRank(offsuit).Compare(DeuceToSevenRank(flush)) > 0)
}

func TestDeuceToSevenWheelIsAStraightNotTheNut(t *testing.T) {
	wheel := mustHand(t, "Ac2d3h4s5c")
	nut := mustHand(t, "2c3d4h5s7c")
	assert.True(t, DeuceToSevenRank(nut).Compare(DeuceToSevenRank(wheel)) > 0)
}

func TestDeuceToSevenDescribeUndoesInversion(t *testing.T) {
	// The nut low is an unpaired, non-straight, non-flush hand -- raw
	// category HighCard -- but DeuceToSevenRank's inversion makes its
	// HandRank.Category() read back as StraightFlush. DeuceToSevenDescribe
	// must undo that and describe the real HighCard hand.
	nut := DeuceToSevenRank(mustHand(t, "2c3d4h5s7c"))
	assert.Equal(t, StraightFlush, nut.Category())
	assert.Equal(t, "High Card, Seven-high, kickers Five, Four, Three, Two", DeuceToSevenDescribe(nut))
}

func TestDeuceToSevenSevenCardPicksBestFive(t *testing.T) {
	// A pat 2-3-4-5-7 plus two junk cards should still evaluate to the
	// same rank as the 5-card nut, since the slow path must find it among
	// C(7,5)=21 subsets.
	nut5 := DeuceToSevenRank(mustHand(t, "2c3d4h5s7c"))
	nut7 := DeuceToSevenRank(mustHand(t, "2c3d4h5s7cKhQd"))
	assert.Equal(t, nut5, nut7)
}
