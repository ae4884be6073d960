package indicator

import (
	"github.com/gammazero/deque"
)

type candidate struct {
	seq   int
	value float64
}

// Extremum tracks the rolling maximum or minimum of the last window samples.
//
// The stored samples live in a RollingWindow, the extremum itself is kept in a
// monotonic deque of candidates so both Evaluate and Apply are amortized O(1).
// Before the window is filled the extremum covers the samples seen so far.
type Extremum struct {
	base

	window     *RollingWindow
	candidates *deque.Deque[candidate]

	// dominates reports whether a replaces b as a candidate
	dominates func(a, b float64) bool

	// seq is the number of samples applied so far
	seq int
}

// NewMax returns the rolling maximum of the last window samples.
func NewMax(window int) (*Extremum, error) {
	return newExtremum("max", window, func(a, b float64) bool { return a >= b })
}

// NewMin returns the rolling minimum of the last window samples.
func NewMin(window int) (*Extremum, error) {
	return newExtremum("min", window, func(a, b float64) bool { return a <= b })
}

func newExtremum(name string, window int, dominates func(a, b float64) bool) (*Extremum, error) {
	if err := checkWindow(name, window); err != nil {
		return nil, err
	}

	w, err := NewRollingWindow(window)
	if err != nil {
		return nil, err
	}

	return &Extremum{
		window:     w,
		candidates: deque.New[candidate](window),
		dominates:  dominates,
	}, nil
}

func (inc *Extremum) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *Extremum) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *Extremum) Warm() bool {
	return inc.window.Full()
}

// Values returns the samples currently held in the window, oldest first.
func (inc *Extremum) Values() []float64 {
	return inc.window.Slice()
}

func (inc *Extremum) execute(v float64, m mode) (Result, error) {
	if m.commit() {
		return Result{Value: inc.push(v), Warm: inc.window.Full()}, nil
	}

	return inc.project(v), nil
}

// project returns the extremum the next push of v would report.
func (inc *Extremum) project(v float64) Result {
	// the candidate with the sequence number below is evicted by the next push
	evicted := inc.seq - inc.window.Cap()
	best := v
	for i := 0; i < inc.candidates.Len(); i++ {
		c := inc.candidates.At(i)
		if c.seq == evicted {
			continue
		}

		if !inc.dominates(best, c.value) {
			best = c.value
		}
		break
	}

	return Result{Value: best, Warm: inc.window.Len()+1 >= inc.window.Cap()}
}

func (inc *Extremum) push(v float64) float64 {
	for inc.candidates.Len() > 0 && inc.dominates(v, inc.candidates.Back().value) {
		inc.candidates.PopBack()
	}

	inc.candidates.PushBack(candidate{seq: inc.seq, value: v})
	inc.window.Push(v)
	inc.seq++

	oldest := inc.seq - inc.window.Cap()
	for inc.candidates.Front().seq < oldest {
		inc.candidates.PopFront()
	}

	return inc.candidates.Front().value
}
