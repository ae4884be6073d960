package indicator

//go:generate mockgen -destination=mocks/mock_indicator.go -package=mocks . Indicator

// Result is the output of a single Evaluate or Apply call.
// Warm reports whether enough samples have been applied for Value to be
// fully meaningful; before that Value is a best-effort partial value.
type Result struct {
	Value float64
	Warm  bool
}

// Indicator is the capability set shared by every streaming indicator.
//
// Evaluate projects the output for v without mutating any state, it can be
// called any number of times. Apply commits v and returns exactly what Evaluate
// would have returned for the same prior state.
//
// Apply mutates state and is not safe for concurrent use, callers serialize
// Apply calls per instance.
type Indicator interface {
	Evaluate(v float64) (Result, error)
	Apply(v float64) (Result, error)
	Warm() bool
	Last() float64
}

// mode tags a single execution path as a projection or a commit.
type mode int

const (
	evaluateMode mode = iota
	applyMode
)

func (m mode) commit() bool {
	return m == applyMode
}

// executor is implemented by every indicator in this package, Evaluate and
// Apply are thin wrappers around execute. execute must not mutate any state
// when it returns an error.
type executor interface {
	execute(v float64, m mode) (Result, error)
}

func run(e executor, v float64, m mode) (Result, error) {
	if err := checkSample(v); err != nil {
		return Result{}, err
	}

	return e.execute(v, m)
}

// base carries the committed output and the update callbacks shared by every
// indicator.
type base struct {
	Updater

	last float64
}

// Last returns the output committed by the most recent Apply, 0 before any.
func (b *base) Last() float64 {
	return b.last
}

func (b *base) commit(e executor, v float64) (Result, error) {
	r, err := run(e, v, applyMode)
	if err != nil {
		return r, err
	}

	b.last = r.Value
	b.EmitUpdate(r)
	return r, nil
}
