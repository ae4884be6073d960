package indicator

import "math"

// NeutralRSI is reported when both the average gain and the average loss are
// zero after the indicator has warmed up.
const NeutralRSI = 50.0

// RSI is the Relative Strength Index
//
// - https://www.investopedia.com/terms/r/rsi.asp
//
// Gains and losses are the positive and negative deltas between consecutive
// samples, each is smoothed with Wilders smoothing over the window. The
// result is 100 - 100 / (1 + avgGain / avgLoss), 100 when there are no
// losses.
//
// The first sample only primes the previous sample. The RSI turns warm once
// both averages are seeded (window + 1 samples) and a non-zero movement has
// been observed, a flat stream has no defined strength.
type RSI struct {
	base

	window     int
	gain, loss *Smoother

	previous    float64
	hasPrevious bool
	warm        bool
}

func NewRSI(window int) (*RSI, error) {
	if err := checkWindow("rsi", window); err != nil {
		return nil, err
	}

	return &RSI{
		window: window,
		gain:   newSmoother(window, 1.0/float64(window)),
		loss:   newSmoother(window, 1.0/float64(window)),
	}, nil
}

func (inc *RSI) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *RSI) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *RSI) Warm() bool {
	return inc.warm
}

func (inc *RSI) Window() int {
	return inc.window
}

func (inc *RSI) execute(v float64, m mode) (Result, error) {
	if !inc.hasPrevious {
		if m.commit() {
			inc.previous = v
			inc.hasPrevious = true
		}

		return Result{Value: NeutralRSI}, nil
	}

	delta := v - inc.previous
	if err := checkFinite("rsi delta", delta); err != nil {
		return Result{}, err
	}

	gain, err := inc.gain.next(math.Max(delta, 0))
	if err != nil {
		return Result{}, err
	}

	loss, err := inc.loss.next(math.Max(-delta, 0))
	if err != nil {
		return Result{}, err
	}

	avgGain, avgLoss := gain.result(), loss.result()
	warm := inc.warm ||
		(avgGain.Warm && avgLoss.Warm && (avgGain.Value > 0 || avgLoss.Value > 0))

	if m.commit() {
		inc.gain.state = gain
		inc.loss.state = loss
		inc.previous = v
		inc.warm = warm
	}

	return Result{
		Value: relativeStrength(avgGain.Value, avgLoss.Value),
		Warm:  warm,
	}, nil
}

func relativeStrength(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return NeutralRSI
		}

		return 100
	}

	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}
