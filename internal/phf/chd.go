// Package phf builds and queries minimal perfect hash tables over the
// fixed keyspaces tables.go enumerates at init time (every valid rank
// histogram or flush mask for a given poker variant).
//
// It wraps github.com/opencoff/go-chd, a compress-hash-displace (CHD)
// MPHF builder: seed two hash functions, bucket every key by the first,
// then for each bucket search for a displacement of the second hash that
// avoids collisions with buckets already placed (spec.md §4.11). Grounded
// on lox-pokerforbots, which pulls in the same library for its 7-card
// evaluator, though that repo's generator source wasn't retrieved, so the
// call shape below is reconstructed from the library's documented
// Builder/CHD split (see DESIGN.md).
package phf

import (
	"encoding/binary"
	"fmt"

	"github.com/opencoff/go-chd"
)

// Table is a minimal perfect hash from uint64 keys to uint32 values, built
// once over a fixed key set and immutable afterward.
type Table struct {
	mphf   *chd.CHD
	values []uint32
}

// Build constructs a Table mapping keys[i] to values[i]. keys must be
// pairwise distinct.
func Build(keys []uint64, values []uint32) (*Table, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("phf: %d keys but %d values", len(keys), len(values))
	}
	raw := make([][]byte, len(keys))
	for i, k := range keys {
		raw[i] = encode(k)
	}

	b, err := chd.NewBuilder(raw)
	if err != nil {
		return nil, fmt.Errorf("phf: new builder: %w", err)
	}
	h, err := b.Freeze()
	if err != nil {
		return nil, fmt.Errorf("phf: freeze: %w", err)
	}

	placed := make([]uint32, len(keys))
	for i, k := range raw {
		placed[h.Find(k)] = values[i]
	}
	return &Table{mphf: h, values: placed}, nil
}

// Lookup returns the value associated with key. The result is meaningless
// if key was not part of the set Build was called with; callers are
// expected to only ever query keys within the enumerated domain.
func (t *Table) Lookup(key uint64) uint32 {
	return t.values[t.mphf.Find(encode(key))]
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return len(t.values)
}

func encode(k uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, k)
	return b
}
