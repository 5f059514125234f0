package pokercore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadugiPerfectFourBeatsMonosuit(t *testing.T) {
	perfect := mustHand(t, "Ac2d3h4s")
	monosuit := mustHand(t, "Ac2c3c4c") // all clubs: reduces to a 1-card badugi
	assert.True(t, BadugiRank(perfect).Compare(BadugiRank(monosuit)) > 0)
}

func TestBadugiCardinalityDominatesRankLowness(t *testing.T) {
	threeCard := mustHand(t, "2c3d4h5c") // 2c/5c share a suit: best subset is 3 cards
	fourCard := mustHand(t, "Kc2d3h4s") // all distinct suits/ranks: a full 4-card badugi
	assert.True(t, BadugiRank(fourCard).Compare(BadugiRank(threeCard)) > 0)
}

func TestBaduciAcesPlayLow(t *testing.T) {
	aceLow := mustHand(t, "Ac2d3h4s")
	twoToFive := mustHand(t, "2c3d4h5s")
	assert.True(t, BaduciRank(aceLow).Compare(BaduciRank(twoToFive)) > 0)
}

func TestDescribeBadugiReportsCardinalityAndRanks(t *testing.T) {
	// HandRank.Describe would misread cardinality 4 as the category
	// Straight (HandCategory(4)), and the digit layout is unrelated
	// either way. DescribeBadugi must report the real cardinality and
	// ranks instead.
	perfect := BadugiRank(mustHand(t, "Ac2d3h4s"))
	assert.Equal(t, "4-card badugi, A 4 3 2", DescribeBadugi(perfect, false))
}

func TestDescribeBaduciAcesPlayLowInDescription(t *testing.T) {
	aceLow := BaduciRank(mustHand(t, "Ac2d3h4s"))
	assert.Equal(t, "4-card badugi, 4 3 2 A", DescribeBadugi(aceLow, true))
}

func TestDescribeBadugiEmptyHand(t *testing.T) {
	assert.Equal(t, "no badugi", DescribeBadugi(BadugiRank(0), false))
}
