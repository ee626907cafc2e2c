package config

import (
	"errors"

	"github.com/ezrec/branchscope/translate"
)

var f = translate.From

var (
	ErrSourceMissing  = errors.New(f("scenario has no 'source' or 'source_file'"))
	ErrSourceConflict = errors.New(f("scenario has both 'source' and 'source_file'"))
	ErrPairsEmpty     = errors.New(f("scenario has no pairs"))
)

// ErrValueType is returned when a scenario global has the wrong type.
type ErrValueType struct {
	Name string
	Want string
}

func (err ErrValueType) Error() string {
	return f("'%v' must be %v", err.Name, err.Want)
}

// ErrValueRange is returned when a scenario value is out of range.
type ErrValueRange struct {
	Name  string
	Value int
}

func (err ErrValueRange) Error() string {
	return f("'%v' is out of range: %d", err.Name, err.Value)
}

// ErrScenario indicates the scenario file of an error.
type ErrScenario struct {
	File string
	Err  error
}

func (err *ErrScenario) Error() string {
	return f("%v: %v", err.File, err.Err)
}

func (err *ErrScenario) Unwrap() error {
	return err.Err
}
