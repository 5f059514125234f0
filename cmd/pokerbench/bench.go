package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/quinrank/pokercore"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure PokerRank throughput over random 7-card hands",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 1_000_000, "number of hands to evaluate")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	hands := randomHands(benchIterations)

	start := time.Now()
	var sink pokercore.HandRank
	for _, h := range hands {
		sink = pokercore.PokerRank(h)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d hands in %v (%.0f ns/hand)\n", len(hands), elapsed, float64(elapsed.Nanoseconds())/float64(len(hands)))
	_ = sink
	return nil
}

// randomHands deals n independent random 7-card hands. This is the CLI's
// own scratch shuffler, not the core's: pokercore deliberately has no
// PRNG-backed deck (spec.md §1).
func randomHands(n int) []pokercore.Hand {
	rng := rand.New(rand.NewSource(1))
	hands := make([]pokercore.Hand, n)
	var deck [pokercore.NumCards]pokercore.Card
	for i := range deck {
		deck[i] = pokercore.Card(i)
	}
	for i := range hands {
		rng.Shuffle(len(deck), func(a, b int) { deck[a], deck[b] = deck[b], deck[a] })
		h, _ := pokercore.NewHand(deck[:7]...)
		hands[i] = h
	}
	return hands
}
