package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACD(t *testing.T) {
	macd, err := NewMACD(12, 26)
	require.NoError(t, err)

	fast, slow := macd.Windows()
	assert.Equal(t, 12, fast)
	assert.Equal(t, 26, slow)

	fastEMA, err := NewEMA(12)
	require.NoError(t, err)

	slowEMA, err := NewEMA(26)
	require.NoError(t, err)

	for i, v := range randomWalk(21, 300) {
		f, err := fastEMA.Apply(v)
		require.NoError(t, err)

		s, err := slowEMA.Apply(v)
		require.NoError(t, err)

		r, err := macd.Apply(v)
		require.NoError(t, err)

		assert.Equal(t, f.Value-s.Value, r.Value, "#%d", i)
		assert.Equal(t, i >= 25, r.Warm, "#%d", i)
	}
}

func TestMACD_SameWindows(t *testing.T) {
	macd, err := NewMACD(5, 5)
	require.NoError(t, err)

	for _, v := range randomWalk(22, 50) {
		r, err := macd.Apply(v)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.Value)
	}
}

func TestMACD_SignalLine(t *testing.T) {
	macd, err := NewMACD(3, 6)
	require.NoError(t, err)

	signal, err := NewEMA(4)
	require.NoError(t, err)

	chain, err := NewChain(macd, signal)
	require.NoError(t, err)
	assert.Same(t, macd, chain.Inner())

	refMACD, err := NewMACD(3, 6)
	require.NoError(t, err)

	refSignal, err := NewEMA(4)
	require.NoError(t, err)

	for i, v := range randomWalk(23, 100) {
		line, err := refMACD.Apply(v)
		require.NoError(t, err)

		want := Result{Value: line.Value}
		if line.Warm {
			want, err = refSignal.Apply(line.Value)
			require.NoError(t, err)
		}

		r, err := chain.Apply(v)
		require.NoError(t, err)
		assert.Equal(t, want, r, "#%d", i)

		// histogram
		histogram := macd.Last() - signal.Last()
		if r.Warm {
			assert.Equal(t, line.Value-want.Value, histogram, "#%d", i)
		}
	}

	assert.True(t, chain.Warm())
}
