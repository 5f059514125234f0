package pokercore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, s string) Hand {
	t.Helper()
	var cards []Card
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		require.NoError(t, err)
		cards = append(cards, c)
	}
	h, err := NewHand(cards...)
	require.NoError(t, err)
	return h
}

func TestNewHandRejectsDuplicates(t *testing.T) {
	ac, _ := ParseCard("Ac")
	_, err := NewHand(ac, ac)
	assert.ErrorIs(t, err, ErrDuplicateCard)
}

func TestHandSetOps(t *testing.T) {
	h := mustHand(t, "AcKcQc")
	assert.Equal(t, 3, h.Len())
	assert.True(t, h.Contains(mustCard(t, "Ac")))

	h2 := h.Remove(mustCard(t, "Ac"))
	assert.Equal(t, 2, h2.Len())
	assert.False(t, h2.Contains(mustCard(t, "Ac")))

	union := h2.Union(mustHand(t, "Ac2d"))
	assert.Equal(t, 4, union.Len())

	inter := h.Intersect(mustHand(t, "AcKc2d"))
	assert.Equal(t, 2, inter.Len())

	diff := h.Difference(mustHand(t, "Ac"))
	assert.Equal(t, 2, diff.Len())
}

func mustCard(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	require.NoError(t, err)
	return c
}

func TestRankCountsAndSuitMasks(t *testing.T) {
	h := mustHand(t, "AcAdKc")
	counts := h.RankCounts()
	assert.Equal(t, uint8(2), counts[Ace])
	assert.Equal(t, uint8(1), counts[King])

	masks := h.SuitMasks()
	assert.Equal(t, uint16(1<<uint(Ace)|1<<uint(King)), masks[Club])
	assert.Equal(t, uint16(1<<uint(Ace)), masks[Diamond])
}

func TestHandCardsAscending(t *testing.T) {
	h := mustHand(t, "AcKc2c")
	cards := h.Cards()
	require.Len(t, cards, 3)
	for i := 1; i < len(cards); i++ {
		assert.Less(t, cards[i-1], cards[i])
	}
}
