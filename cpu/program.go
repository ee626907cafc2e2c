package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Instruction is a single resolved instruction.
type Instruction struct {
	LineNo   int // 1-based source line, for diagnostics.
	Mnemonic Mnemonic
	Mode     Mode
	Operand  Operand
}

// String returns the assembly representation of the instruction.
func (ins Instruction) String() string {
	switch ins.Mode {
	case MODE_IMPLICIT:
		return ins.Mnemonic.String()
	case MODE_ACCUMULATOR:
		return ins.Mnemonic.String() + " a"
	}
	return ins.Mnemonic.String() + " " + ins.Operand.String()
}

// Program is an assembled, label free instruction sequence.
// It is never modified after assembly, and may be shared by any number of
// concurrently running Cpu instances.
type Program struct {
	code []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.code)
}

// At returns the instruction at a program index.
func (prog *Program) At(ip int) (ins Instruction, ok bool) {
	if ip < 0 || ip >= prog.Len() {
		return
	}
	return prog.code[ip], true
}

// LineNo returns the source line of the instruction at ip, or 0.
func (prog *Program) LineNo(ip int) int {
	ins, _ := prog.At(ip)
	return ins.LineNo
}

// Instructions iterates over the program.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip := range prog.Len() {
			if !yield(ip, prog.code[ip]) {
				return
			}
		}
	}
}

// Listing returns one line per instruction: index, source line, instruction.
func (prog *Program) Listing() string {
	var sb strings.Builder
	for ip, ins := range prog.Instructions() {
		fmt.Fprintf(&sb, "%04d %5d  %v\n", ip, ins.LineNo, ins)
	}
	return sb.String()
}
