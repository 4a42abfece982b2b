package dataset

import (
	"errors"
	"fmt"
)

// ErrIntegrity marks malformed input or an internal accumulation
// defect. Integrity errors abort the whole dataset's pipeline and
// must reach the caller unmodified.
var ErrIntegrity = errors.New("dataset integrity violation")

// ErrNotCalculated is returned when derived state is queried before
// the calculation pass that produces it has run.
var ErrNotCalculated = errors.New("not yet calculated")

// integrityf wraps ErrIntegrity with context.
func integrityf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, fmt.Sprintf(format, args...))
}

// notCalculatedf wraps ErrNotCalculated with the name of the missing
// calculation pass.
func notCalculatedf(pass string) error {
	return fmt.Errorf("%w: run %s first", ErrNotCalculated, pass)
}
