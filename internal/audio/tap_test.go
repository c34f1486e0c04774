package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter streams 1, 2, 3, ... on both channels.
func counter() beep.Streamer {
	next := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i] = [2]float64{next, next}
		}
		return len(samples), true
	})
}

func TestTap_SnapshotBeforeFull(t *testing.T) {
	tap := NewTap(counter(), 8)
	buf := make([][2]float64, 3)
	_, ok := tap.Stream(buf)
	require.True(t, ok)

	got := tap.Snapshot(8)
	require.Len(t, got, 3)
	assert.Equal(t, [2]float64{1, 1}, got[0])
	assert.Equal(t, [2]float64{3, 3}, got[2])
}

func TestTap_SnapshotWrapsOldestFirst(t *testing.T) {
	tap := NewTap(counter(), 8)
	buf := make([][2]float64, 5)
	for i := 0; i < 3; i++ {
		tap.Stream(buf)
	}

	got := tap.Snapshot(4)
	require.Len(t, got, 4)
	for i, s := range got {
		assert.Equal(t, float64(12+i), s[0])
	}

	all := tap.Snapshot(100)
	require.Len(t, all, 8)
	assert.Equal(t, 8.0, all[0][0])
	assert.Equal(t, 15.0, all[7][0])
}

func TestTap_PassesThrough(t *testing.T) {
	tap := NewTap(counter(), 4)
	buf := make([][2]float64, 2)
	n, ok := tap.Stream(buf)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{2, 2}, buf[1])
	assert.NoError(t, tap.Err())
}
