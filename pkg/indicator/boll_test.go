package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/datatype/floats"
)

func TestBollinger(t *testing.T) {
	boll, err := NewBollinger(3, 2)
	require.NoError(t, err)

	b, err := boll.ApplyBands(1)
	require.NoError(t, err)
	assert.Equal(t, Bands{Upper: 1, Middle: 1, Lower: 1}, b)

	_, err = boll.ApplyBands(2)
	require.NoError(t, err)

	projected, err := boll.EvaluateBands(3)
	require.NoError(t, err)

	b, err = boll.ApplyBands(3)
	require.NoError(t, err)
	assert.Equal(t, projected, b)

	// population stddev of [1, 2, 3] is sqrt(2/3)
	std := math.Sqrt(2.0 / 3.0)
	assert.InDelta(t, 2, b.Middle, 1e-12)
	assert.InDelta(t, 2+2*std, b.Upper, 1e-12)
	assert.InDelta(t, 2-2*std, b.Lower, 1e-12)
	assert.True(t, b.Warm)
	assert.Equal(t, b, boll.LastBands())
	assert.InDelta(t, 2, boll.Last(), 1e-12)
}

func TestBollinger_BruteForce(t *testing.T) {
	boll, err := NewBollinger(20, 2.5)
	require.NoError(t, err)

	var seen floats.Slice
	for i, v := range randomWalk(41, 300) {
		seen.Push(v)
		tail := seen.Tail(20)
		mean := tail.Mean()

		variance := 0.0
		for _, x := range tail {
			variance += (x - mean) * (x - mean)
		}
		std := math.Sqrt(variance / float64(len(tail)))

		b, err := boll.ApplyBands(v)
		require.NoError(t, err)
		assert.InDelta(t, mean, b.Middle, 1e-9, "#%d", i)
		assert.InDelta(t, mean+2.5*std, b.Upper, 1e-9, "#%d", i)
		assert.InDelta(t, mean-2.5*std, b.Lower, 1e-9, "#%d", i)
	}
}

func TestBollinger_TypicalPrice(t *testing.T) {
	assert.InDelta(t, 10, TypicalPrice(Bar{High: 12, Low: 8, Close: 10}), 1e-12)
}

func TestBollinger_InvalidWidth(t *testing.T) {
	for _, k := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := NewBollinger(20, k)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}
