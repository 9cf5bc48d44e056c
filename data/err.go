package data

import (
	"github.com/ezrec/cva5data/translate"
)

var f = translate.From

// ErrNotFound is returned when a requested data file is absent.
// It unwraps to the stat error, so a missing file also matches fs.ErrNotExist.
type ErrNotFound struct {
	Name string // Name as requested, relative to the data root.
	Path string // Absolute path that was checked.
	Err  error
}

func (err *ErrNotFound) Error() string {
	return f("file %v doesn't exist in cva5data", err.Name)
}

func (err *ErrNotFound) Unwrap() error {
	return err.Err
}

func (err *ErrNotFound) Is(target error) (ok bool) {
	_, ok = target.(*ErrNotFound)
	return
}
