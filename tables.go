package pokercore

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quinrank/pokercore/internal/combin"
	"github.com/quinrank/pokercore/internal/phf"
)

// TableStat reports one generated table's size and build time, for
// diagnostics (see cmd/pokerbench's gen-tables subcommand).
type TableStat struct {
	Name      string
	Entries   int
	BuildTime time.Duration
}

var tableStats []TableStat

// Stats returns a snapshot of every perfect-hash table built at package
// initialization.
func Stats() []TableStat {
	return append([]TableStat(nil), tableStats...)
}

// evalTables bundles the two minimal perfect hash tables a table-driven
// variant needs: one keyed by rank-count histogram (suits ignored), one
// keyed by a single suit's 13-bit rank mask (spec.md §4.3-§4.4).
//
// ace-to-five has no flush table: it ignores suits entirely, so flush is
// absent, not nil-checked-and-skipped.
type evalTables struct {
	nonFlush *phf.Table
	flush    *phf.Table
}

func (t *evalTables) lookupNonFlush(counts [NumRanks]int) HandRank {
	return HandRank(t.nonFlush.Lookup(uint64(quinarySignature(counts))))
}

func (t *evalTables) lookupFlush(mask uint16) HandRank {
	return HandRank(t.flush.Lookup(uint64(mask)))
}

// flushSizes are the mask sizes the flush table must answer: PokerRank
// (and friends) only ever look a suit up once it holds 5 or more cards, so
// the flush table never needs to cover fewer (spec.md §4.4).
var flushSizes = []int{5, 6, 7}

// nonFlushSizes are the histogram sizes the non-flush table must answer.
// Unlike the flush table, the non-flush lookup runs unconditionally on
// every call regardless of hand size, so it must also cover 0-4 card
// hands, not just 5-7 card hands: the reference classifier already resolves any sub-5-card
// histogram to the correct worst-kicker-padded rank (spec.md §7, §8.3,
// §9), it just needs those smaller histograms in the table to look them
// up.
var nonFlushSizes = []int{0, 1, 2, 3, 4, 5, 6, 7}

// buildNonFlushTable enumerates every rank-count histogram of sizes in
// nonFlushSizes over active (a set of ordinals available to this variant),
// classifies each via the reference classifier, and builds an MPHF from
// quinary signature to encoded HandRank.
func buildNonFlushTable(name string, active []int, wheelMask uint16, wheelHigh int, weight func(HandCategory) uint32, checkStraight bool) *phf.Table {
	start := time.Now()
	var keys []uint64
	var values []uint32
	for _, n := range nonFlushSizes {
		for _, counts := range enumerateHistograms(active, n) {
			sig := quinarySignature(counts)
			mask := presenceMask(counts)
			rank := classifyNonFlush(counts, mask, wheelMask, wheelHigh, weight, checkStraight)
			keys = append(keys, uint64(sig))
			values = append(values, uint32(rank))
		}
	}
	t, err := phf.Build(keys, values)
	if err != nil {
		logrus.WithError(err).WithField("table", name).Panic("pokercore: failed to build non-flush table")
	}
	elapsed := time.Since(start)
	tableStats = append(tableStats, TableStat{Name: name, Entries: t.Len(), BuildTime: elapsed})
	logrus.WithFields(logrus.Fields{
		"table":   name,
		"entries": t.Len(),
		"elapsed": elapsed,
	}).Debug("pokercore: built non-flush table")
	return t
}

// buildFlushTable enumerates every rank subset of sizes in flushSizes drawn
// from active, classifies each as a flush or straight flush, and builds an
// MPHF from the raw rank mask to encoded HandRank.
func buildFlushTable(name string, active []int, wheelMask uint16, wheelHigh int, weight func(HandCategory) uint32) *phf.Table {
	start := time.Now()
	var keys []uint64
	var values []uint32
	for _, n := range flushSizes {
		for _, mask := range enumerateMasks(active, n) {
			rank := classifyFlush(mask, wheelMask, wheelHigh, weight)
			keys = append(keys, uint64(mask))
			values = append(values, uint32(rank))
		}
	}
	t, err := phf.Build(keys, values)
	if err != nil {
		logrus.WithError(err).WithField("table", name).Panic("pokercore: failed to build flush table")
	}
	elapsed := time.Since(start)
	tableStats = append(tableStats, TableStat{Name: name, Entries: t.Len(), BuildTime: elapsed})
	logrus.WithFields(logrus.Fields{
		"table":   name,
		"entries": t.Len(),
		"elapsed": elapsed,
	}).Debug("pokercore: built flush table")
	return t
}

// enumerateHistograms returns every way to distribute total cards across
// active ordinals with each ordinal's count capped at 4.
func enumerateHistograms(active []int, total int) [][NumRanks]int {
	var out [][NumRanks]int
	var counts [NumRanks]int
	var rec func(idx, remaining int)
	rec = func(idx, remaining int) {
		if idx == len(active) {
			if remaining == 0 {
				out = append(out, counts)
			}
			return
		}
		ord := active[idx]
		max := 4
		if remaining < max {
			max = remaining
		}
		for c := 0; c <= max; c++ {
			counts[ord] = c
			rec(idx+1, remaining-c)
		}
		counts[ord] = 0
	}
	rec(0, total)
	return out
}

// enumerateMasks returns every total-sized subset of active, each as a
// 13-bit mask.
func enumerateMasks(active []int, total int) []uint16 {
	combos := combin.Combinations(len(active), total)
	masks := make([]uint16, len(combos))
	for i, combo := range combos {
		var m uint16
		for _, j := range combo {
			m |= 1 << uint(active[j])
		}
		masks[i] = m
	}
	return masks
}

func allOrdinals() []int {
	ords := make([]int, NumRanks)
	for i := range ords {
		ords[i] = i
	}
	return ords
}

// sixPlusOrdinals are the nine ranks that exist in a short deck (Six
// through Ace), spec.md §6.6.
func sixPlusOrdinals() []int {
	return []int{int(Six), int(Seven), int(Eight), int(Nine), int(Ten), int(Jack), int(Queen), int(King), int(Ace)}
}

var (
	standardTables  *evalTables
	aceToFiveTables *evalTables
	sixPlusTables   *evalTables
)

func init() {
	all := allOrdinals()
	standardTables = &evalTables{
		nonFlush: buildNonFlushTable("standard/non-flush", all, standardWheelMask, standardWheelHigh, standardWeight, true),
		flush:    buildFlushTable("standard/flush", all, standardWheelMask, standardWheelHigh, standardWeight),
	}
	aceToFiveTables = &evalTables{
		nonFlush: buildNonFlushTable("ace-to-five/non-flush", all, 0, 0, standardWeight, false),
	}
	short := sixPlusOrdinals()
	sixPlusTables = &evalTables{
		nonFlush: buildNonFlushTable("six-plus/non-flush", short, sixPlusWheelMask, sixPlusWheelHigh, sixPlusWeight, true),
		flush:    buildFlushTable("six-plus/flush", short, sixPlusWheelMask, sixPlusWheelHigh, sixPlusWeight),
	}
}
