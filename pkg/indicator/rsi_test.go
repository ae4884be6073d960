package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/datatype/floats"
)

func TestRSI_StockCharts(t *testing.T) {
	values := loadPrices(t, stockChartsPrices)

	tests := []struct {
		name   string
		values []float64
		window int
		want   floats.Slice
	}{
		{
			name:   "RSI",
			values: values,
			window: 14,
			want: floats.Slice{
				70.464135,
				66.249619,
				66.480942,
				69.346853,
				66.294713,
				57.915021,
				62.880718,
				63.208789,
				56.011585,
				62.339929,
				54.670971,
				50.386815,
				40.019424,
				41.492635,
				41.902430,
				45.499497,
				37.322778,
				33.090483,
				37.788772,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsi, err := NewRSI(tt.window)
			require.NoError(t, err)

			var got floats.Slice
			for i, price := range tt.values {
				r, err := rsi.Apply(price)
				require.NoError(t, err)

				// warm after window + 1 samples
				assert.Equal(t, i >= tt.window, r.Warm, "#%d", i)
				if r.Warm {
					got.Push(r.Value)
				}
			}

			if assert.Equal(t, len(tt.want), len(got)) {
				for i, v := range tt.want {
					assert.InDelta(t, v, got[i], 1e-5, "Expected rsi[%d] to be %v, but got %v", i, v, got[i])
				}
			}
		})
	}
}

func TestRSI_RisingStream(t *testing.T) {
	rsi, err := NewRSI(3)
	require.NoError(t, err)

	want := []Result{
		{Value: NeutralRSI},
		{Value: 100},
		{Value: 100},
		{Value: 100, Warm: true},
		{Value: 100, Warm: true},
	}
	for i, v := range []float64{0, 1, 2, 3, 4} {
		r, err := rsi.Apply(v)
		require.NoError(t, err)
		assert.Equal(t, want[i], r, "#%d", i)
	}

	r, err := rsi.Evaluate(5)
	require.NoError(t, err)
	assert.Equal(t, Result{Value: 100, Warm: true}, r)
}

func TestRSI_FlatStreamStaysCold(t *testing.T) {
	rsi, err := NewRSI(3)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		r, err := rsi.Apply(42)
		require.NoError(t, err)
		assert.Equal(t, Result{Value: NeutralRSI}, r)
	}
	assert.False(t, rsi.Warm())

	r, err := rsi.Apply(41)
	require.NoError(t, err)
	assert.True(t, r.Warm)
	assert.Equal(t, 0.0, r.Value)
}

func TestRSI_EvaluateKeepsPrevious(t *testing.T) {
	rsi, err := NewRSI(2)
	require.NoError(t, err)

	for _, v := range []float64{10, 11, 10} {
		_, err := rsi.Apply(v)
		require.NoError(t, err)
	}

	// avg gain 0.5, avg loss 0.5 after the seed
	for _, v := range []float64{100, -100, 12} {
		_, err := rsi.Evaluate(v)
		require.NoError(t, err)
	}

	// delta against 10: gain 2, avg gain 1.25, avg loss 0.25
	r, err := rsi.Apply(12)
	require.NoError(t, err)
	assert.InDelta(t, 100-100/(1+1.25/0.25), r.Value, 1e-12)
}

func TestRSI_Bounds(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		rsi, err := NewRSI(14)
		require.NoError(t, err)

		for _, v := range randomWalk(seed, 2000) {
			r, err := rsi.Apply(v)
			require.NoError(t, err)
			if r.Warm {
				assert.GreaterOrEqual(t, r.Value, 0.0)
				assert.LessOrEqual(t, r.Value, 100.0)
			}
		}
	}
}
