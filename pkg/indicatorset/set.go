package indicatorset

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/c9s/streamta/pkg/envvar"
	"github.com/c9s/streamta/pkg/indicator"
)

var log = logrus.WithField("component", "indicatorset")

var debugIndicatorSet = false

func init() {
	envvar.SetBool("DEBUG_INDICATORSET", &debugIndicatorSet)
}

// Snapshot maps indicator ids to their results for a single sample.
type Snapshot map[string]indicator.Result

// Warm reports whether every result of the snapshot is warm.
func (s Snapshot) Warm() bool {
	for _, r := range s {
		if !r.Warm {
			return false
		}
	}
	return true
}

// Set fans one sample stream out to a named group of indicators. Like the
// indicators it holds, a Set is not safe for concurrent Apply calls.
//
//go:generate callbackgen -type Set
type Set struct {
	Name string

	ids        []string
	indicators map[string]indicator.Indicator

	updateCallbacks []func(id string, r indicator.Result)
}

func New(name string) *Set {
	return &Set{
		Name:       name,
		indicators: make(map[string]indicator.Indicator),
	}
}

// NewFromConfig builds every indicator of the config in declaration order.
func NewFromConfig(name string, config *Config) (*Set, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	set := New(name)
	for _, settings := range config.Indicators {
		inc, err := settings.Indicator()
		if err != nil {
			return nil, errors.Wrapf(err, "indicator %s", settings.ID)
		}

		if err := set.Add(settings.ID, inc); err != nil {
			return nil, err
		}

		log.Debugf("[%s] %s indicator %s added", name, settings.Type, settings.ID)
	}

	return set, nil
}

func (s *Set) Add(id string, inc indicator.Indicator) error {
	if _, ok := s.indicators[id]; ok {
		return errors.Wrapf(indicator.ErrInvalidConfiguration, "indicator %s already exists in set %s", id, s.Name)
	}

	s.ids = append(s.ids, id)
	s.indicators[id] = inc
	return nil
}

func (s *Set) Get(id string) (indicator.Indicator, bool) {
	inc, ok := s.indicators[id]
	return inc, ok
}

// IDs returns the indicator ids in insertion order.
func (s *Set) IDs() []string {
	return append([]string(nil), s.ids...)
}

func (s *Set) Len() int {
	return len(s.ids)
}

// Warm reports whether every indicator of the set is warm.
func (s *Set) Warm() bool {
	for _, id := range s.ids {
		if !s.indicators[id].Warm() {
			return false
		}
	}
	return true
}

// Evaluate projects v through every indicator without mutating any of them.
func (s *Set) Evaluate(v float64) (Snapshot, error) {
	if err := indicator.CheckSample(v); err != nil {
		return nil, err
	}

	var err error
	snapshot := make(Snapshot, len(s.ids))
	for _, id := range s.ids {
		r, evalErr := s.indicators[id].Evaluate(v)
		if evalErr != nil {
			err = multierr.Append(err, errors.Wrapf(evalErr, "indicator %s", id))
			continue
		}

		snapshot[id] = r
	}

	return snapshot, err
}

// Apply commits v to every indicator. Invalid samples are rejected before
// any indicator is touched.
func (s *Set) Apply(v float64) (Snapshot, error) {
	if err := indicator.CheckSample(v); err != nil {
		return nil, err
	}

	var err error
	snapshot := make(Snapshot, len(s.ids))
	for _, id := range s.ids {
		r, applyErr := s.indicators[id].Apply(v)
		if applyErr != nil {
			log.WithError(applyErr).Errorf("[%s] unable to apply sample %f to indicator %s", s.Name, v, id)
			err = multierr.Append(err, errors.Wrapf(applyErr, "indicator %s", id))
			continue
		}

		snapshot[id] = r
		s.EmitUpdate(id, r)

		if debugIndicatorSet {
			log.Debugf("[%s] %s: %f warm=%v", s.Name, id, r.Value, r.Warm)
		}
	}

	return snapshot, err
}
