package percent

import (
	"errors"
	"math"
)

var (
	ErrZeroAnchor = errors.New("anchor must be non-zero")
	ErrNonFinite  = errors.New("value must be a finite number")
)

func validateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFinite
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return validateFinite(v) == nil
}
