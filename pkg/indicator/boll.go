package indicator

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Bands is a single Bollinger bands output.
type Bands struct {
	Upper, Middle, Lower float64
	Warm                 bool
}

// Bollinger Bands
// - https://www.investopedia.com/terms/b/bollingerbands.asp
//
// The middle band is the simple moving average of the last window samples,
// the upper and lower bands sit k population standard deviations above and
// below it. Feed TypicalPrice(bar) to follow the usual definition over bars.
// Evaluate and Apply report the middle band.
type Bollinger struct {
	base

	window *RollingWindow
	k      float64
	bands  Bands
}

func NewBollinger(window int, k float64) (*Bollinger, error) {
	if err := checkWindow("bollinger", window); err != nil {
		return nil, err
	}

	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "bollinger band width must be a finite non-negative number, got %v", k)
	}

	w, err := NewRollingWindow(window)
	if err != nil {
		return nil, err
	}

	return &Bollinger{window: w, k: k}, nil
}

func (inc *Bollinger) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *Bollinger) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *Bollinger) EvaluateBands(v float64) (Bands, error) {
	if err := checkSample(v); err != nil {
		return Bands{}, err
	}

	return inc.executeBands(v, evaluateMode)
}

func (inc *Bollinger) ApplyBands(v float64) (Bands, error) {
	if _, err := inc.Apply(v); err != nil {
		return Bands{}, err
	}

	return inc.bands, nil
}

func (inc *Bollinger) Warm() bool {
	return inc.window.Full()
}

// LastBands returns the bands committed by the most recent Apply.
func (inc *Bollinger) LastBands() Bands {
	return inc.bands
}

func (inc *Bollinger) execute(v float64, m mode) (Result, error) {
	b, err := inc.executeBands(v, m)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: b.Middle, Warm: b.Warm}, nil
}

func (inc *Bollinger) executeBands(v float64, m mode) (Bands, error) {
	values := inc.window.Slice()
	if inc.window.Full() {
		values = values[1:]
	}
	values.Push(v)

	mean, variance := stat.MeanVariance(values, nil)

	// population variance, MeanVariance returns the unbiased estimate
	n := float64(len(values))
	if len(values) > 1 {
		variance = variance * (n - 1) / n
	} else {
		variance = 0
	}

	band := inc.k * math.Sqrt(variance)
	b := Bands{
		Upper:  mean + band,
		Middle: mean,
		Lower:  mean - band,
		Warm:   len(values) == inc.window.Cap(),
	}

	if err := checkFinite("bollinger bands", b.Upper, b.Middle, b.Lower); err != nil {
		return Bands{}, err
	}

	if m.commit() {
		inc.window.Push(v)
		inc.bands = b
	}

	return b, nil
}
