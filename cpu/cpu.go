package cpu

import (
	"fmt"
	"log"
)

// TICK_BUDGET is the default number of instructions a run may execute.
const TICK_BUDGET = 1024

// Packed flag byte bits, as pushed by php.
const (
	FLAG_CARRY    = uint8(0x01)
	FLAG_ZERO     = uint8(0x02)
	FLAG_OVERFLOW = uint8(0x40)
	FLAG_NEGATIVE = uint8(0x80)
)

// Fold wraps any integer into a byte; negative values wrap from 256.
func Fold(value int) uint8 {
	value %= 256
	if value < 0 {
		value += 256
	}
	return uint8(value)
}

// Cpu is the execution state of a single run of a Program.
// A Cpu is not safe for concurrent use, but any number of Cpus may
// share one Program.
type Cpu struct {
	Verbose bool        // Set to enable verbose logging.
	Logger  *log.Logger // Diagnostic output. Defaults to log.Default().

	A, X, Y  uint8 // Registers.
	Carry    uint8 // Carry flag, 0 or 1.
	Zero     bool  // Zero flag.
	Overflow bool  // Overflow flag.
	Negative bool  // Negative flag.

	PC    int   // Index of the next instruction.
	Stack Stack // Stack simulation.
	Vars  Vars  // Variable store.
	Ticks int   // Instructions executed.

	program *Program
}

// NewCpu creates a fresh Cpu for one run of a program.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		program: prog,
		Zero:    true,
	}

	return
}

// Program returns the program being run.
func (cpu *Cpu) Program() *Program {
	return cpu.program
}

func (cpu *Cpu) logger() *log.Logger {
	if cpu.Logger == nil {
		return log.Default()
	}
	return cpu.Logger
}

// Done returns true once the PC has left the program.
func (cpu *Cpu) Done() bool {
	return cpu.PC < 0 || cpu.PC >= cpu.program.Len()
}

// Flags returns the packed flag byte.
func (cpu *Cpu) Flags() (flags uint8) {
	if cpu.Negative {
		flags |= FLAG_NEGATIVE
	}
	if cpu.Overflow {
		flags |= FLAG_OVERFLOW
	}
	if cpu.Zero {
		flags |= FLAG_ZERO
	}
	flags |= cpu.Carry & FLAG_CARRY
	return
}

// SetFlags unpacks a flag byte.
func (cpu *Cpu) SetFlags(flags uint8) {
	cpu.Negative = (flags & FLAG_NEGATIVE) != 0
	cpu.Overflow = (flags & FLAG_OVERFLOW) != 0
	cpu.Zero = (flags & FLAG_ZERO) != 0
	cpu.Carry = flags & FLAG_CARRY
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	flags := []byte("nv----zc")
	for n, bit := range []uint8{FLAG_NEGATIVE, FLAG_OVERFLOW, 0, 0, 0, 0, FLAG_ZERO, FLAG_CARRY} {
		if bit != 0 && (cpu.Flags()&bit) != 0 {
			flags[n] -= 'a' - 'A'
		}
	}

	text += fmt.Sprintf("   pc: %04d\n", cpu.PC)
	text += fmt.Sprintf("    a: %02X\n", cpu.A)
	text += fmt.Sprintf("    x: %02X\n", cpu.X)
	text += fmt.Sprintf("    y: %02X\n", cpu.Y)
	text += fmt.Sprintf("flags: %s\n", flags)
	text += fmt.Sprintf("stack: % X\n", cpu.Stack.Data)
	text += fmt.Sprintf(" vars: %v\n", cpu.Vars.String())

	return
}

// Tick executes a single instruction. It does nothing once the run is done.
func (cpu *Cpu) Tick() {
	ins, ok := cpu.program.At(cpu.PC)
	if !ok {
		return
	}

	if cpu.Verbose {
		cpu.logger().Printf("%04d: line %d %v", cpu.PC, ins.LineNo, ins)
	}

	cpu.PC++
	cpu.execute(&ins)
	cpu.Ticks++
}

// Run executes until the PC leaves the program, or budget instructions
// have been executed. It returns false if the budget ran out first; the
// state of an incomplete run is not meaningful.
func (cpu *Cpu) Run(budget int) (done bool) {
	for ticks := 0; ticks < budget && !cpu.Done(); ticks++ {
		cpu.Tick()
	}

	done = cpu.Done()
	if !done {
		cpu.logger().Printf("cpu: ran out of ticks at line %d (pc %d); aborted", cpu.program.LineNo(cpu.PC), cpu.PC)
	}

	return
}

// setZN sets the Zero and Negative flags from the folded value.
func (cpu *Cpu) setZN(value int) {
	v := Fold(value)
	cpu.Zero = v == 0
	cpu.Negative = v > 127
}

func (cpu *Cpu) setA(value int) {
	cpu.A = Fold(value)
	cpu.setZN(value)
}

func (cpu *Cpu) setX(value int) {
	cpu.X = Fold(value)
	cpu.setZN(value)
}

func (cpu *Cpu) setY(value int) {
	cpu.Y = Fold(value)
	cpu.setZN(value)
}

func (cpu *Cpu) setCarry(carry bool) {
	cpu.Carry = 0
	if carry {
		cpu.Carry = 1
	}
}

// load reads the operand of an instruction, per its addressing mode.
func (cpu *Cpu) load(ins *Instruction) int {
	switch ins.Mode {
	case MODE_ACCUMULATOR:
		return int(cpu.A)
	case MODE_IMMEDIATE:
		return ins.Operand.Value
	case MODE_ZERO_PAGE, MODE_ABSOLUTE:
		return cpu.Vars.Get(ins.Operand.Var)
	}
	panic(ErrModeIllegal{Mnemonic: ins.Mnemonic, Mode: ins.Mode})
}

// store writes the operand of an instruction, per its addressing mode.
func (cpu *Cpu) store(ins *Instruction, value int) {
	switch ins.Mode {
	case MODE_ACCUMULATOR:
		cpu.A = Fold(value)
	case MODE_ZERO_PAGE, MODE_ABSOLUTE:
		cpu.Vars.Set(ins.Operand.Var, value)
	default:
		panic(ErrModeIllegal{Mnemonic: ins.Mnemonic, Mode: ins.Mode})
	}
}

func (cpu *Cpu) push(value int) {
	cpu.Stack.Push(value)
}

func (cpu *Cpu) pop() int {
	return int(cpu.Stack.Pop())
}

func (cpu *Cpu) pushFlags() {
	cpu.push(int(cpu.Flags()))
}

func (cpu *Cpu) popFlags() {
	cpu.SetFlags(uint8(cpu.pop()))
}

// compare sets the flags as for register - operand.
func (cpu *Cpu) compare(reg int, operand int) {
	cpu.setCarry(reg >= operand)
	cpu.setZN(reg - operand)
}

// adc adds with carry. sbc is adc of the inverted operand.
func (cpu *Cpu) adc(operand int) {
	a := int(cpu.A)
	res := a + operand + int(cpu.Carry)
	cpu.setCarry(res > 255)
	cpu.Overflow = ((a ^ res) & (operand ^ res) & 0x80) != 0
	cpu.setA(res)
}

func (cpu *Cpu) branch(cond bool, target int) {
	if cond {
		cpu.PC = target
	}
}

// jsr pushes the return address high byte, then low byte.
func (cpu *Cpu) jsr(target int) {
	pc := cpu.PC
	cpu.push(pc >> 8)
	cpu.push(pc & 0xff)
	cpu.PC = target
}

// rts pops the return address. With fewer than two bytes on the stack,
// this is a return from the outermost routine, and the run ends.
func (cpu *Cpu) rts() {
	if cpu.Stack.Len() < 2 {
		cpu.PC = cpu.program.Len()
		return
	}
	low := cpu.pop()
	high := cpu.pop()
	cpu.PC = high*0x100 + low
}
