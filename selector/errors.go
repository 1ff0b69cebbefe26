package selector

import (
	"errors"
	"fmt"

	"github.com/rhartert/srte-paths/srte"
)

var (
	// ErrInvalidInput indicates malformed call arguments. Selections that
	// fail with this error return no partial result.
	ErrInvalidInput = errors.New("selector: invalid input")

	// ErrNoDisjointPath indicates that a pair has no candidate path sharing
	// no edge with the paths already chosen for it.
	ErrNoDisjointPath = errors.New("selector: no disjoint path")

	errEmptyPath = errors.New("path is empty")
)

// NoDisjointPathError reports a pair left without backup path. It matches
// ErrNoDisjointPath with errors.Is.
type NoDisjointPathError struct {
	Pair srte.Pair
}

func (e *NoDisjointPathError) Error() string {
	return fmt.Sprintf("%s for pair %s", ErrNoDisjointPath, e.Pair)
}

func (e *NoDisjointPathError) Unwrap() error {
	return ErrNoDisjointPath
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
