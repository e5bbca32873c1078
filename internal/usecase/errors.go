package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrConflict              = errors.New("conflict")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrSkippableUserState marks per-user problems that a batch logs and
	// moves past instead of aborting.
	ErrSkippableUserState = errors.New("skippable user state")
)

// dependencyErr wraps a repository failure so callers can match it against
// ErrDependencyUnavailable.
func dependencyErr(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(err, format, args...), ErrDependencyUnavailable)
}

func invalidInput(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}

func notFound(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}
