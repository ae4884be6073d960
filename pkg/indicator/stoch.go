package indicator

import (
	"math"

	"github.com/pkg/errors"
)

// NeutralStoch is reported when the period high equals the period low.
const NeutralStoch = 50.0

// Bar is a single high/low/close observation.
type Bar struct {
	High, Low, Close float64
}

// TypicalPrice returns (high + low + close) / 3
func TypicalPrice(b Bar) float64 {
	return (b.High + b.Low + b.Close) / 3.0
}

// Stoch is the Stochastic Oscillator (%K)
// - https://www.investopedia.com/terms/s/stochasticoscillator.asp
//
// It measures where the close sits in the high-low range of the last window
// bars: 100 * (close - lowest) / (highest - lowest). When the range is empty
// the result is NeutralStoch. Evaluate and Apply take a single sample that
// acts as high, low and close at once, EvaluateBar and ApplyBar take a full bar.
type Stoch struct {
	base

	high, low *Extremum
}

func NewStoch(window int) (*Stoch, error) {
	if err := checkWindow("stoch", window); err != nil {
		return nil, err
	}

	high, err := NewMax(window)
	if err != nil {
		return nil, err
	}

	low, err := NewMin(window)
	if err != nil {
		return nil, err
	}

	return &Stoch{high: high, low: low}, nil
}

func (inc *Stoch) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *Stoch) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *Stoch) EvaluateBar(b Bar) (Result, error) {
	if err := checkBar(b); err != nil {
		return Result{}, err
	}

	return inc.executeBar(b, evaluateMode)
}

func (inc *Stoch) ApplyBar(b Bar) (Result, error) {
	if err := checkBar(b); err != nil {
		return Result{}, err
	}

	r, err := inc.executeBar(b, applyMode)
	if err != nil {
		return r, err
	}

	inc.last = r.Value
	inc.EmitUpdate(r)
	return r, nil
}

func (inc *Stoch) Warm() bool {
	return inc.high.Warm()
}

func (inc *Stoch) execute(v float64, m mode) (Result, error) {
	return inc.executeBar(Bar{High: v, Low: v, Close: v}, m)
}

func (inc *Stoch) executeBar(b Bar, m mode) (Result, error) {
	r, err := inc.project(b)
	if err != nil {
		return r, err
	}

	if m.commit() {
		inc.push(b)
	}

	return r, nil
}

// project returns %K for b against the window extended by b.
func (inc *Stoch) project(b Bar) (Result, error) {
	highest := inc.high.project(b.High)
	lowest := inc.low.project(b.Low)

	spread := highest.Value - lowest.Value
	if err := checkFinite("stoch range", spread); err != nil {
		return Result{}, err
	}

	k := NeutralStoch
	if spread > 0 {
		// divide first, the ratio of close within the range rounds to at most 1
		k = 100.0 * ((b.Close - lowest.Value) / spread)
		k = math.Max(0, math.Min(100, k))
	}

	return Result{Value: k, Warm: highest.Warm}, nil
}

func (inc *Stoch) push(b Bar) {
	inc.high.push(b.High)
	inc.low.push(b.Low)
}

// checkBar rejects non-finite bars and bars whose close lies outside of
// [low, high].
func checkBar(b Bar) error {
	for _, v := range []float64{b.High, b.Low, b.Close} {
		if err := checkSample(v); err != nil {
			return err
		}
	}

	if b.Low > b.High || b.Close < b.Low || b.Close > b.High {
		return errors.Wrapf(ErrNumericDomain, "inconsistent bar high=%v low=%v close=%v", b.High, b.Low, b.Close)
	}

	return nil
}

// SmoothedStoch is the stochastic %K smoothed by an EMA of the smoothing
// window. The EMA only consumes %K once the raw stochastic is warm, before
// that the raw partial %K is reported as a cold result.
type SmoothedStoch struct {
	base

	stoch *Stoch
	ema   *Smoother
}

func NewSmoothedStoch(window, smoothing int) (*SmoothedStoch, error) {
	stoch, err := NewStoch(window)
	if err != nil {
		return nil, err
	}

	ema, err := NewEMA(smoothing)
	if err != nil {
		return nil, errors.Wrap(err, "stoch smoothing")
	}

	return &SmoothedStoch{stoch: stoch, ema: ema}, nil
}

func (inc *SmoothedStoch) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *SmoothedStoch) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *SmoothedStoch) EvaluateBar(b Bar) (Result, error) {
	if err := checkBar(b); err != nil {
		return Result{}, err
	}

	return inc.executeBar(b, evaluateMode)
}

func (inc *SmoothedStoch) ApplyBar(b Bar) (Result, error) {
	if err := checkBar(b); err != nil {
		return Result{}, err
	}

	r, err := inc.executeBar(b, applyMode)
	if err != nil {
		return r, err
	}

	inc.last = r.Value
	inc.EmitUpdate(r)
	return r, nil
}

func (inc *SmoothedStoch) Warm() bool {
	return inc.stoch.Warm() && inc.ema.Warm()
}

func (inc *SmoothedStoch) Windows() (window, smoothing int) {
	return inc.stoch.high.window.Cap(), inc.ema.Window()
}

func (inc *SmoothedStoch) execute(v float64, m mode) (Result, error) {
	return inc.executeBar(Bar{High: v, Low: v, Close: v}, m)
}

func (inc *SmoothedStoch) executeBar(b Bar, m mode) (Result, error) {
	k, err := inc.stoch.project(b)
	if err != nil {
		return Result{}, err
	}

	r := Result{Value: k.Value}
	next := inc.ema.state
	if k.Warm {
		if next, err = inc.ema.next(k.Value); err != nil {
			return Result{}, err
		}
		r = next.result()
	}

	if m.commit() {
		inc.stoch.push(b)
		inc.ema.state = next
	}

	return r, nil
}
