package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBackdrop(t *testing.T) {
	b, err := LoadBackdrop()
	require.NoError(t, err)

	// The map must cover the 20x15 viewport, one tile per unit.
	assert.Equal(t, 20, b.Cols)
	assert.Equal(t, 15, b.Rows)
	require.Len(t, b.Dark, 20*15)

	// Checkerboard alternation in both directions.
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			want := (col+row)%2 == 0
			assert.Equal(t, want, b.Dark[row*b.Cols+col], "tile %d,%d", col, row)
		}
	}
}
