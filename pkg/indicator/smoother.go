package indicator

type phase int

const (
	// coldPhase accumulates the seed mean of the first window samples
	coldPhase phase = iota

	// warmPhase runs the exponential recurrence
	warmPhase
)

type smootherState struct {
	phase phase

	// count saturates at the seed window
	count int
	sum   float64
	value float64
}

func (s smootherState) result() Result {
	return Result{Value: s.value, Warm: s.phase == warmPhase}
}

// Smoother is an exponential smoother, v' = alpha * x + (1 - alpha) * v.
//
// The first window samples are averaged into the seed, the recurrence starts
// from that seed mean once it is established. During the seed phase the
// result is the running mean of the samples seen so far.
type Smoother struct {
	base

	window int
	alpha  float64
	state  smootherState
}

// NewEMA returns the exponential moving average with alpha = 2 / (window + 1)
//
// see https://www.investopedia.com/ask/answers/122314/what-exponential-moving-average-ema-formula-and-how-ema-calculated.asp
func NewEMA(window int) (*Smoother, error) {
	if err := checkWindow("ema", window); err != nil {
		return nil, err
	}

	return newSmoother(window, 2.0/float64(window+1)), nil
}

// NewWilders returns the Wilders smoothing (also known as RMA or SMMA) with
// alpha = 1 / window
func NewWilders(window int) (*Smoother, error) {
	if err := checkWindow("wilders", window); err != nil {
		return nil, err
	}

	return newSmoother(window, 1.0/float64(window)), nil
}

func newSmoother(window int, alpha float64) *Smoother {
	return &Smoother{
		window: window,
		alpha:  alpha,
	}
}

func (inc *Smoother) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *Smoother) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *Smoother) Warm() bool {
	return inc.state.phase == warmPhase
}

func (inc *Smoother) Window() int {
	return inc.window
}

func (inc *Smoother) Alpha() float64 {
	return inc.alpha
}

func (inc *Smoother) execute(v float64, m mode) (Result, error) {
	next, err := inc.next(v)
	if err != nil {
		return Result{}, err
	}

	if m.commit() {
		inc.state = next
	}

	return next.result(), nil
}

// next returns the state after v without committing it.
func (inc *Smoother) next(v float64) (smootherState, error) {
	s := inc.state
	switch s.phase {
	case warmPhase:
		s.value = inc.alpha*v + (1-inc.alpha)*s.value

	case coldPhase:
		s.count++
		s.sum += v
		s.value = s.sum / float64(s.count)
		if s.count == inc.window {
			s.phase = warmPhase
		}
	}

	if err := checkFinite("smoother", s.value); err != nil {
		return inc.state, err
	}

	return s, nil
}
