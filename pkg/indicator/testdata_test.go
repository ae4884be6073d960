package indicator

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// close prices from https://school.stockcharts.com/doku.php?id=technical_indicators:relative_strength_index_rsi
var stockChartsPrices = []byte(`[44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03, 46.41, 46.22, 45.64, 46.21, 46.25, 45.71, 46.45, 45.78, 45.35, 44.03, 44.18, 44.22, 44.57, 43.42, 42.66, 43.13]`)

func loadPrices(t *testing.T, data []byte) []float64 {
	var values []float64
	err := json.Unmarshal(data, &values)
	require.NoError(t, err)
	return values
}

// randomWalk returns a deterministic price path around 100
func randomWalk(seed int64, n int) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	price := 100.0
	for i := range values {
		price += rnd.NormFloat64()
		values[i] = price
	}
	return values
}
