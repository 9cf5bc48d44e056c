package version

import (
	"errors"

	"github.com/ezrec/cva5data/translate"
)

var f = translate.From

var (
	ErrUnavailable    = errors.New(f("version comparison unavailable"))
	ErrConstraintType = errors.New(f("constraint is not a boolean"))
	ErrInconsistent   = errors.New(f("version string and tuple disagree"))
)

// ErrSyntax reports a version string that cannot be parsed.
type ErrSyntax string

func (err ErrSyntax) Error() string {
	return f("'%v' is not a valid version", string(err))
}

// ErrConstraint wraps a failure to evaluate a constraint expression.
type ErrConstraint struct {
	Expr string
	Err  error
}

func (err *ErrConstraint) Error() string {
	return f("constraint '%v' %v", err.Expr, err.Err)
}

func (err *ErrConstraint) Unwrap() error {
	return err.Err
}
