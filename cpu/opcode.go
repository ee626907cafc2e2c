package cpu

import (
	"fmt"
	"strings"
)

// Mnemonic is an instruction mnemonic.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MN_INVALID = Mnemonic(iota) // ???
	MN_ADC                      // adc
	MN_AND                      // and
	MN_ASL                      // asl
	MN_BCC                      // bcc
	MN_BCS                      // bcs
	MN_BEQ                      // beq
	MN_BIT                      // bit
	MN_BMI                      // bmi
	MN_BNE                      // bne
	MN_BPL                      // bpl
	MN_BVC                      // bvc
	MN_BVS                      // bvs
	MN_CLC                      // clc
	MN_CLD                      // cld
	MN_CLI                      // cli
	MN_CLV                      // clv
	MN_CMP                      // cmp
	MN_CPX                      // cpx
	MN_CPY                      // cpy
	MN_DEC                      // dec
	MN_DEX                      // dex
	MN_DEY                      // dey
	MN_EOR                      // eor
	MN_INC                      // inc
	MN_INX                      // inx
	MN_INY                      // iny
	MN_JMP                      // jmp
	MN_JSR                      // jsr
	MN_LDA                      // lda
	MN_LDX                      // ldx
	MN_LDY                      // ldy
	MN_LSR                      // lsr
	MN_NOP                      // nop
	MN_ORA                      // ora
	MN_PHA                      // pha
	MN_PHP                      // php
	MN_PLA                      // pla
	MN_PLP                      // plp
	MN_ROL                      // rol
	MN_ROR                      // ror
	MN_RTI                      // rti
	MN_RTS                      // rts
	MN_SBC                      // sbc
	MN_SEC                      // sec
	MN_SED                      // sed
	MN_SEI                      // sei
	MN_STA                      // sta
	MN_STX                      // stx
	MN_STY                      // sty
	MN_TAX                      // tax
	MN_TAY                      // tay
	MN_TSX                      // tsx
	MN_TXA                      // txa
	MN_TXS                      // txs
	MN_TYA                      // tya
	MN_BRANCH                   // branch
	mnemonicCount
)

// IsConditionalBranch returns true for the eight flag-testing branches.
func (mn Mnemonic) IsConditionalBranch() bool {
	switch mn {
	case MN_BCC, MN_BCS, MN_BEQ, MN_BNE, MN_BMI, MN_BPL, MN_BVC, MN_BVS:
		return true
	}
	return false
}

// Modes returns the set of legal addressing modes for the mnemonic.
func (mn Mnemonic) Modes() ModeSet {
	if mn <= MN_INVALID || mn >= mnemonicCount {
		return 0
	}
	return legalModes[mn]
}

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLICIT    = Mode(0)  // implicit
	MODE_ACCUMULATOR = Mode(1)  // accumulator
	MODE_IMMEDIATE   = Mode(2)  // immediate
	MODE_ZERO_PAGE   = Mode(3)  // ZP
	MODE_ABSOLUTE    = Mode(4)  // absolute
	MODE_RELATIVE    = Mode(5)  // relative
	MODE_ZERO_PAGE_X = Mode(6)  // ZP,X
	MODE_ZERO_PAGE_Y = Mode(7)  // ZP,Y
	MODE_ABSOLUTE_X  = Mode(8)  // absolute,X
	MODE_ABSOLUTE_Y  = Mode(9)  // absolute,Y
	MODE_INDIRECT    = Mode(10) // indirect
	MODE_INDIRECT_X  = Mode(11) // indirect,X
	MODE_INDIRECT_Y  = Mode(12) // indirect,Y
)

// IsVariable returns true if the mode reads or writes a variable slot.
// Zero-page and absolute are the same mode under two names.
func (mode Mode) IsVariable() bool {
	return mode == MODE_ZERO_PAGE || mode == MODE_ABSOLUTE
}

// ModeSet is a bit set of addressing modes.
type ModeSet uint16

// Modes builds a ModeSet.
func Modes(modes ...Mode) (ms ModeSet) {
	for _, mode := range modes {
		ms |= 1 << mode
	}
	return
}

// Has returns true if the mode is a member of the set.
func (ms ModeSet) Has(mode Mode) bool {
	return (ms & (1 << mode)) != 0
}

const (
	modeImplicit = ModeSet(1 << MODE_IMPLICIT)
	modeRelative = ModeSet(1 << MODE_RELATIVE)
)

var (
	modeLoad   = Modes(MODE_IMMEDIATE, MODE_ZERO_PAGE, MODE_ZERO_PAGE_X, MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y, MODE_INDIRECT_X, MODE_INDIRECT_Y)
	modeShift  = Modes(MODE_ACCUMULATOR, MODE_ZERO_PAGE, MODE_ZERO_PAGE_X, MODE_ABSOLUTE, MODE_ABSOLUTE_X)
	modeMemory = Modes(MODE_ZERO_PAGE, MODE_ZERO_PAGE_X, MODE_ABSOLUTE, MODE_ABSOLUTE_X)
	modeIndex  = Modes(MODE_IMMEDIATE, MODE_ZERO_PAGE, MODE_ABSOLUTE)
)

// legalModes is the mnemonic x mode legality matrix. Indexed and indirect
// modes are listed where the 6502 has them, but the assembler never
// produces them.
var legalModes = [mnemonicCount]ModeSet{
	MN_ADC:    modeLoad,
	MN_AND:    modeLoad,
	MN_ASL:    modeShift,
	MN_BCC:    modeRelative,
	MN_BCS:    modeRelative,
	MN_BEQ:    modeRelative,
	MN_BIT:    Modes(MODE_ZERO_PAGE, MODE_ABSOLUTE),
	MN_BMI:    modeRelative,
	MN_BNE:    modeRelative,
	MN_BPL:    modeRelative,
	MN_BVC:    modeRelative,
	MN_BVS:    modeRelative,
	MN_CLC:    modeImplicit,
	MN_CLD:    modeImplicit,
	MN_CLI:    modeImplicit,
	MN_CLV:    modeImplicit,
	MN_CMP:    modeLoad,
	MN_CPX:    modeIndex,
	MN_CPY:    modeIndex,
	MN_DEC:    modeMemory,
	MN_DEX:    modeImplicit,
	MN_DEY:    modeImplicit,
	MN_EOR:    modeLoad,
	MN_INC:    modeMemory,
	MN_INX:    modeImplicit,
	MN_INY:    modeImplicit,
	MN_JMP:    modeRelative,
	MN_JSR:    modeRelative,
	MN_LDA:    modeLoad,
	MN_LDX:    Modes(MODE_IMMEDIATE, MODE_ZERO_PAGE, MODE_ZERO_PAGE_Y, MODE_ABSOLUTE, MODE_ABSOLUTE_Y),
	MN_LDY:    Modes(MODE_IMMEDIATE, MODE_ZERO_PAGE, MODE_ZERO_PAGE_X, MODE_ABSOLUTE, MODE_ABSOLUTE_X),
	MN_LSR:    modeShift,
	MN_NOP:    modeImplicit,
	MN_ORA:    modeLoad,
	MN_PHA:    modeImplicit,
	MN_PHP:    modeImplicit,
	MN_PLA:    modeImplicit,
	MN_PLP:    modeImplicit,
	MN_ROL:    modeShift,
	MN_ROR:    modeShift,
	MN_RTI:    modeImplicit,
	MN_RTS:    modeImplicit,
	MN_SBC:    modeLoad,
	MN_SEC:    modeImplicit,
	MN_SED:    modeImplicit,
	MN_SEI:    modeImplicit,
	MN_STA:    Modes(MODE_ZERO_PAGE, MODE_ZERO_PAGE_X, MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y, MODE_INDIRECT_X, MODE_INDIRECT_Y),
	MN_STX:    Modes(MODE_ZERO_PAGE, MODE_ZERO_PAGE_Y, MODE_ABSOLUTE),
	MN_STY:    Modes(MODE_ZERO_PAGE, MODE_ZERO_PAGE_X, MODE_ABSOLUTE),
	MN_TAX:    modeImplicit,
	MN_TAY:    modeImplicit,
	MN_TSX:    modeImplicit,
	MN_TXA:    modeImplicit,
	MN_TXS:    modeImplicit,
	MN_TYA:    modeImplicit,
	MN_BRANCH: modeRelative,
}

// mnemonicMap maps lower case mnemonic names.
var mnemonicMap = map[string]Mnemonic{}

func init() {
	for mn := MN_INVALID + 1; mn < mnemonicCount; mn++ {
		mnemonicMap[mn.String()] = mn
	}
}

// LookupMnemonic finds a mnemonic by name, ignoring case.
func LookupMnemonic(name string) (mn Mnemonic, ok bool) {
	mn, ok = mnemonicMap[strings.ToLower(name)]
	return
}

// ParseBranch parses the name of one of the eight conditional branches.
func ParseBranch(name string) (mn Mnemonic, err error) {
	mn, ok := LookupMnemonic(name)
	if !ok || !mn.IsConditionalBranch() {
		err = ErrBranchType(name)
		mn = MN_INVALID
	}
	return
}

// OperandKind is the type of a resolved operand.
type OperandKind int

const (
	OPERAND_NONE   = OperandKind(0) // No operand.
	OPERAND_VALUE  = OperandKind(1) // Integer constant.
	OPERAND_VAR    = OperandKind(2) // Variable key.
	OPERAND_TARGET = OperandKind(3) // Program index.
)

// Operand is a fully resolved instruction operand.
type Operand struct {
	Kind  OperandKind
	Value int    // Constant, or program index for OPERAND_TARGET.
	Var   VarKey // Variable key for OPERAND_VAR.
}

// String returns the assembly representation of the operand.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_VALUE:
		return fmt.Sprintf("#%d", op.Value)
	case OPERAND_VAR:
		return op.Var.String()
	case OPERAND_TARGET:
		return fmt.Sprintf("%d", op.Value)
	}
	return ""
}
