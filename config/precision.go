// Package config holds the process-wide settings that geometry values read
// when they are constructed.
package config

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// DefaultSignificantDigits is used whenever params.significant-digits is not
// configured.
const DefaultSignificantDigits = 8

var ErrInvalidDigits = errors.New("invalid significant digits")

// unset is stored while no value has been configured.
const unset = -1

var significantDigits atomic.Int64

func init() {
	significantDigits.Store(unset)
}

// SignificantDigits returns the configured digit count, or
// DefaultSignificantDigits if none has been set.
func SignificantDigits() int {
	n := significantDigits.Load()
	if n == unset {
		return DefaultSignificantDigits
	}
	return int(n)
}

// SetSignificantDigits replaces the process-wide digit count. Points that
// already exist keep the value they were built with.
func SetSignificantDigits(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDigits, n)
	}
	significantDigits.Store(int64(n))
	return nil
}

// Reset forgets any configured digit count.
func Reset() {
	significantDigits.Store(unset)
}
