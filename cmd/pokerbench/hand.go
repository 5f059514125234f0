package main

import (
	"fmt"
	"strings"

	"github.com/quinrank/pokercore"
)

// parseHand splits s on whitespace and parses each token as a single card,
// the minimal multi-card grammar pokerbench needs. Full multi-card string
// parsing is explicitly out of scope for pokercore itself (spec.md §1), so
// it lives here, in the consumer.
func parseHand(s string) (pokercore.Hand, error) {
	fields := strings.Fields(s)
	cards := make([]pokercore.Card, 0, len(fields))
	for _, f := range fields {
		c, err := pokercore.ParseCard(f)
		if err != nil {
			return 0, fmt.Errorf("card %q: %w", f, err)
		}
		cards = append(cards, c)
	}
	return pokercore.NewHand(cards...)
}
