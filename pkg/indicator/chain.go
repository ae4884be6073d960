package indicator

import "github.com/pkg/errors"

// Chain feeds the output of inner into outer, for example an EMA over a MACD
// line gives the MACD signal line.
//
// outer only consumes inner outputs once inner is warm, until then the chain
// reports the partial inner value as a cold result. The chain takes ownership
// of both indicators, they must not be applied from anywhere else.
type Chain struct {
	base

	inner, outer Indicator
}

func NewChain(inner, outer Indicator) (*Chain, error) {
	if inner == nil || outer == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "chain requires both inner and outer indicators")
	}

	return &Chain{inner: inner, outer: outer}, nil
}

func (inc *Chain) Evaluate(v float64) (Result, error) {
	if err := checkSample(v); err != nil {
		return Result{}, err
	}

	r, err := inc.inner.Evaluate(v)
	if err != nil || !r.Warm {
		return Result{Value: r.Value}, err
	}

	return inc.outer.Evaluate(r.Value)
}

// Apply commits v to inner and, once inner is warm, its output to outer.
// Both steps are evaluated first so a failing outer leaves inner untouched.
func (inc *Chain) Apply(v float64) (Result, error) {
	projected, err := inc.Evaluate(v)
	if err != nil {
		return projected, err
	}

	r, err := inc.inner.Apply(v)
	if err != nil {
		return Result{}, err
	}

	if r.Warm {
		if r, err = inc.outer.Apply(r.Value); err != nil {
			return Result{}, err
		}
	} else {
		r = Result{Value: r.Value}
	}

	inc.last = r.Value
	inc.EmitUpdate(r)
	return r, nil
}

func (inc *Chain) Warm() bool {
	return inc.inner.Warm() && inc.outer.Warm()
}

func (inc *Chain) Inner() Indicator {
	return inc.inner
}

func (inc *Chain) Outer() Indicator {
	return inc.outer
}
