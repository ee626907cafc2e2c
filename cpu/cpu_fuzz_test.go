package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpuAdc(f *testing.F) {
	for _, a := range []uint8{0, 1, 0x7f, 0x80, 0xff} {
		f.Add(a, uint8(0x01), false)
		f.Add(a, uint8(0x80), true)
	}

	f.Fuzz(func(t *testing.T, a uint8, operand uint8, carry bool) {
		assert := assert.New(t)

		cpu := NewCpu(&Program{})
		cpu.A = a
		cpu.setCarry(carry)
		c := int(cpu.Carry)

		cpu.adc(int(operand))

		sum := int(a) + int(operand) + c
		signed := int(int8(a)) + int(int8(operand)) + c

		assert.Equal(uint8(sum), cpu.A)
		assert.Equal(sum > 255, cpu.Carry == 1)
		assert.Equal(signed < -128 || signed > 127, cpu.Overflow)
		assert.Equal(cpu.A == 0, cpu.Zero)
		assert.Equal(cpu.A >= 0x80, cpu.Negative)
	})
}

func FuzzCpuSbc(f *testing.F) {
	for _, a := range []uint8{0, 1, 0x50, 0x80, 0xff} {
		f.Add(a, uint8(0x01), true)
		f.Add(a, uint8(0xb0), false)
	}

	f.Fuzz(func(t *testing.T, a uint8, operand uint8, carry bool) {
		assert := assert.New(t)

		ins := Instruction{
			Mnemonic: MN_SBC,
			Mode:     MODE_IMMEDIATE,
			Operand:  Operand{Kind: OPERAND_VALUE, Value: int(operand)},
		}

		cpu := NewCpu(&Program{code: []Instruction{ins}})
		cpu.A = a
		cpu.setCarry(carry)
		borrow := 1 - int(cpu.Carry)

		assert.True(cpu.Run(1))

		diff := int(a) - int(operand) - borrow
		signed := int(int8(a)) - int(int8(operand)) - borrow

		assert.Equal(Fold(diff), cpu.A)
		assert.Equal(diff >= 0, cpu.Carry == 1)
		assert.Equal(signed < -128 || signed > 127, cpu.Overflow)
	})
}

func FuzzAssembler(f *testing.F) {
	f.Add("")
	f.Add("loop: jmp loop")
	f.Add("lda #$10+%101-0x2\nsta PlayerX+3\nrts")
	f.Add("start:\n@x: inx\nbne @x\n: dey\nbpl :-\njmp :+\n:\n")
	f.Add("lda PlayerY\ncmp #$40\nbranch @hit\ninc PlayerY\n@hit: rts")
	f.Add("jsr sub\nbrk\nsub: pha\nphp\nplp\npla\nrts")
	f.Add("lda (ptr),y\nlda ptr,x\nlda #\nsta #1")

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		prog, err := Assemble(source)
		if err != nil {
			assert.Nil(prog)
			var ae *ErrAssembly
			assert.True(errors.As(err, &ae), "%v", err)
			return
		}

		again, err := Assemble(source)
		assert.NoError(err)
		assert.Equal(prog, again)

		for ip, ins := range prog.Instructions() {
			assert.True(ins.Mnemonic.Modes().Has(ins.Mode), "%d: %v", ip, ins)
			if ins.Mode == MODE_RELATIVE {
				assert.Equal(OPERAND_TARGET, ins.Operand.Kind)
				assert.GreaterOrEqual(ins.Operand.Value, 0)
				assert.LessOrEqual(ins.Operand.Value, prog.Len())
			}
		}

		for _, branch := range []Mnemonic{MN_BEQ, MN_BNE} {
			cpu := NewCpu(prog)
			cpu.Logger = quiet
			assert.NoError(cpu.Vars.SetBranchType(branch))
			done := cpu.Run(64)
			assert.Equal(done, cpu.Done())
			assert.LessOrEqual(cpu.Ticks, 64)
		}
	})
}
