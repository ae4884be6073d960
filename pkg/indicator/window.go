package indicator

import (
	"github.com/c9s/streamta/pkg/datatype/floats"
)

// RollingWindow is a fixed capacity circular buffer holding the most recent
// samples. Pushing beyond capacity evicts the oldest sample.
type RollingWindow struct {
	values []float64

	// head is the index of the oldest sample
	head int
	size int
}

func NewRollingWindow(capacity int) (*RollingWindow, error) {
	if err := checkWindow("rolling window", capacity); err != nil {
		return nil, err
	}

	return &RollingWindow{
		values: make([]float64, capacity),
	}, nil
}

func (w *RollingWindow) Cap() int {
	return len(w.values)
}

func (w *RollingWindow) Len() int {
	return w.size
}

func (w *RollingWindow) Full() bool {
	return w.size == len(w.values)
}

// At returns the i-th stored sample, 0 is the oldest one.
func (w *RollingWindow) At(i int) float64 {
	if i < 0 || i >= w.size {
		return 0
	}

	return w.values[(w.head+i)%len(w.values)]
}

// Evicting returns the sample the next Push would evict.
func (w *RollingWindow) Evicting() (float64, bool) {
	if !w.Full() {
		return 0, false
	}

	return w.values[w.head], true
}

// Push appends v and returns the evicted sample, if any.
func (w *RollingWindow) Push(v float64) (float64, bool) {
	if !w.Full() {
		w.values[(w.head+w.size)%len(w.values)] = v
		w.size++
		return 0, false
	}

	evicted := w.values[w.head]
	w.values[w.head] = v
	w.head = (w.head + 1) % len(w.values)
	return evicted, true
}

// Sum recomputes the sum of the stored samples.
func (w *RollingWindow) Sum() (sum float64) {
	for i := 0; i < w.size; i++ {
		sum += w.At(i)
	}

	return sum
}

// Slice returns a copy of the stored samples in arrival order.
func (w *RollingWindow) Slice() floats.Slice {
	s := make(floats.Slice, 0, w.size+1)
	for i := 0; i < w.size; i++ {
		s.Push(w.At(i))
	}

	return s
}
