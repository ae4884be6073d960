package indicator

import "github.com/pkg/errors"

// MACD is the Moving Average Convergence Divergence line, the difference
// between a fast and a slow EMA of the same samples.
//
// The signal line and the histogram are left to the caller, chain an EMA over
// this indicator with NewChain to get the signal line.
type MACD struct {
	base

	fast, slow *Smoother
}

// NewMACD only requires both windows to be positive, keeping fast < slow is up
// to the caller.
func NewMACD(fastWindow, slowWindow int) (*MACD, error) {
	fast, err := NewEMA(fastWindow)
	if err != nil {
		return nil, errors.Wrap(err, "macd fast window")
	}

	slow, err := NewEMA(slowWindow)
	if err != nil {
		return nil, errors.Wrap(err, "macd slow window")
	}

	return &MACD{fast: fast, slow: slow}, nil
}

func (inc *MACD) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *MACD) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *MACD) Warm() bool {
	return inc.fast.Warm() && inc.slow.Warm()
}

func (inc *MACD) Windows() (fast, slow int) {
	return inc.fast.Window(), inc.slow.Window()
}

func (inc *MACD) execute(v float64, m mode) (Result, error) {
	fast, err := inc.fast.next(v)
	if err != nil {
		return Result{}, errors.Wrap(err, "macd fast ema")
	}

	slow, err := inc.slow.next(v)
	if err != nil {
		return Result{}, errors.Wrap(err, "macd slow ema")
	}

	value := fast.value - slow.value
	if err := checkFinite("macd", value); err != nil {
		return Result{}, err
	}

	if m.commit() {
		inc.fast.state = fast
		inc.slow.state = slow
	}

	return Result{
		Value: value,
		Warm:  fast.phase == warmPhase && slow.phase == warmPhase,
	}, nil
}
