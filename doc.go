// Package pokercore is a poker hand-evaluation core: a family of ranking
// functions that, given a small multiset of playing cards, compute a
// totally ordered 32-bit rank such that comparing two hands' ranks yields
// the correct winner under the rules of a specific poker variant.
//
// The evaluator is purely functional. Cards and hands are immutable value
// types, and the perfect-hash lookup tables used by [PokerRank],
// [AceToFiveRank], and [SixPlusRank] are built once at package
// initialization and never mutated afterwards, so concurrent evaluation
// requires no synchronization.
//
// Parsing goes no further than a single two-character card ([ParseCard]);
// multi-card parsing, deck shuffling, and multi-way equity calculation are
// deliberately outside this package; see cmd/pokerbench for a minimal
// consumer that wires those concerns around the core.
package pokercore
