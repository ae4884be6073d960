package indicator

// SMA is the simple moving average over the last window samples.
//
// Before the window is filled the average is taken over the samples seen so
// far, the result stays cold until window samples have been applied.
type SMA struct {
	base

	window *RollingWindow
	sum    float64
}

func NewSMA(window int) (*SMA, error) {
	if err := checkWindow("sma", window); err != nil {
		return nil, err
	}

	w, err := NewRollingWindow(window)
	if err != nil {
		return nil, err
	}

	return &SMA{window: w}, nil
}

func (inc *SMA) Evaluate(v float64) (Result, error) {
	return run(inc, v, evaluateMode)
}

func (inc *SMA) Apply(v float64) (Result, error) {
	return inc.commit(inc, v)
}

func (inc *SMA) Warm() bool {
	return inc.window.Full()
}

func (inc *SMA) Window() int {
	return inc.window.Cap()
}

func (inc *SMA) execute(v float64, m mode) (Result, error) {
	sum := inc.sum
	n := inc.window.Len() + 1
	if evicted, ok := inc.window.Evicting(); ok {
		sum -= evicted
		n--
	}

	sum += v
	if err := checkFinite("sma sum", sum); err != nil {
		return Result{}, err
	}

	if m.commit() {
		inc.window.Push(v)
		inc.sum = sum

		// re-sync the running sum once per lap to keep rounding errors bounded
		if inc.window.head == 0 && inc.window.Full() {
			inc.sum = inc.window.Sum()
		}
	}

	return Result{
		Value: sum / float64(n),
		Warm:  n == inc.window.Cap(),
	}, nil
}
