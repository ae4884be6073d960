package indicator

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration is returned by constructors for non-positive
	// windows or invalid composite parameters.
	ErrInvalidConfiguration = errors.New("invalid indicator configuration")

	// ErrNumericDomain is returned when a sample is NaN or infinite.
	ErrNumericDomain = errors.New("sample out of numeric domain")
)

func checkWindow(name string, window int) error {
	if window <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "%s window must be greater than 0, got %d", name, window)
	}

	return nil
}

func checkSample(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrNumericDomain, "sample %v", v)
	}

	return nil
}

// checkFinite rejects intermediate values that overflowed while processing a
// finite sample.
func checkFinite(name string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrNumericDomain, "%s overflowed: %v", name, v)
		}
	}

	return nil
}

// CheckSample returns an error matching ErrNumericDomain for NaN or infinite
// samples, callers fanning one sample out to many indicators validate once
// up front.
func CheckSample(v float64) error {
	return checkSample(v)
}
