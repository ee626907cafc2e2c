package cpu

import (
	"errors"

	"github.com/ezrec/branchscope/translate"
)

var f = translate.From

var (
	// Addressing mode errors
	ErrRegisterWrong       = errors.New(f("bad addressing mode: wrong register"))
	ErrImmediateMissing    = errors.New(f("bad immediate: missing value"))
	ErrIndirectUnsupported = errors.New(f("indirect addressing modes are not supported"))
	ErrIndexedUnsupported  = errors.New(f("indexed addressing modes are not supported"))
	ErrIndexInvalid        = errors.New(f("invalid indexed addressing mode"))
	ErrArgumentsExcess     = errors.New(f("too many arguments (above 2)"))

	// Expression errors
	ErrTrailingSign     = errors.New(f("invalid expression: trailing sign"))
	ErrVariableMultiple = errors.New(f("multiple variables in expression"))
	ErrVariableNegated  = errors.New(f("cannot subtract variable"))

	// Label errors
	ErrLocalScope   = errors.New(f("local label outside of a global label"))
	ErrAnonNoDir    = errors.New(f("anonymous label reference must have a direction"))
	ErrAnonInvalid  = errors.New(f("invalid character in anonymous label reference"))
	ErrAnonMixed    = errors.New(f("mixed directions in anonymous label reference"))
	ErrAnonNotFound = errors.New(f("bad anonymous label reference: label not found"))
	ErrLabelMapping = errors.New(f("incorrect label mapping"))
)

// ErrMnemonicUnknown is returned for an unrecognized instruction.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown instruction: %v", string(err))
}

// ErrModeIllegal is returned when a mnemonic does not support a mode.
type ErrModeIllegal struct {
	Mnemonic Mnemonic
	Mode     Mode
}

func (err ErrModeIllegal) Error() string {
	return f("%v mode is not supported by %v", err.Mode.String(), err.Mnemonic.String())
}

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("invalid label: \"%v\"", string(err))
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("duplicate label: %v", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("unknown label: %v", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrBranchType is returned when the branch selector is not one of the
// eight conditional branches.
type ErrBranchType string

func (err ErrBranchType) Error() string {
	return f("'%v' is not a conditional branch", string(err))
}

// ErrAssembly is the error returned by the assembler. LineNo is 1-based.
type ErrAssembly struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrAssembly) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrAssembly) Unwrap() error {
	return err.Err
}
