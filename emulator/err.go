package emulator

import (
	"errors"

	"github.com/ezrec/branchscope/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("no program loaded"))
)

// ErrPairUnknown is returned for an unrecognized branch pair name.
type ErrPairUnknown string

func (err ErrPairUnknown) Error() string {
	return f("unknown branch pair: %v", string(err))
}

// ErrRuntime indicates the seed coordinate of a failed run.
type ErrRuntime struct {
	X, Y int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("at (%d, %d) %v", err.X, err.Y, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
