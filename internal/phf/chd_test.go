package phf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndLookup(t *testing.T) {
	keys := []uint64{10, 7, 200, 3, 99}
	values := []uint32{1, 2, 3, 4, 5}

	tbl, err := Build(keys, values)
	require.NoError(t, err)
	assert.Equal(t, len(keys), tbl.Len())

	for i, k := range keys {
		assert.Equal(t, values[i], tbl.Lookup(k))
	}
}

func TestBuildMismatchedLengths(t *testing.T) {
	_, err := Build([]uint64{1, 2}, []uint32{1})
	assert.Error(t, err)
}
