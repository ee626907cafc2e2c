package cpu

// taken returns the flag condition of a conditional branch.
func (cpu *Cpu) taken(mn Mnemonic) bool {
	switch mn {
	case MN_BCC:
		return cpu.Carry == 0
	case MN_BCS:
		return cpu.Carry != 0
	case MN_BEQ:
		return cpu.Zero
	case MN_BNE:
		return !cpu.Zero
	case MN_BMI:
		return cpu.Negative
	case MN_BPL:
		return !cpu.Negative
	case MN_BVC:
		return !cpu.Overflow
	case MN_BVS:
		return cpu.Overflow
	}
	panic(ErrBranchType(mn.String()))
}

// execute performs an instruction. The PC has already been advanced.
func (cpu *Cpu) execute(ins *Instruction) {
	mn := ins.Mnemonic
	target := ins.Operand.Value

	switch mn {
	case MN_ADC:
		cpu.adc(cpu.load(ins))
	case MN_SBC:
		// Binary mode only: adc of the one's complement.
		cpu.adc(cpu.load(ins) ^ 0xff)
	case MN_AND:
		cpu.setA(int(cpu.A) & cpu.load(ins))
	case MN_ORA:
		cpu.setA(int(cpu.A) | cpu.load(ins))
	case MN_EOR:
		cpu.setA(int(cpu.A) ^ cpu.load(ins))
	case MN_ASL:
		v := cpu.load(ins) << 1
		cpu.setCarry(v > 255)
		cpu.store(ins, int(Fold(v)))
		cpu.setZN(v)
	case MN_LSR:
		v := cpu.load(ins)
		cpu.setCarry((v & 1) != 0)
		v = int(Fold(v >> 1))
		cpu.store(ins, v)
		cpu.setZN(v)
	case MN_ROL:
		v := (cpu.load(ins) << 1) | int(cpu.Carry)
		cpu.setCarry(v > 255)
		cpu.store(ins, int(Fold(v)))
		cpu.setZN(v)
	case MN_ROR:
		v := cpu.load(ins)
		if cpu.Carry != 0 {
			v |= 0x100
		}
		cpu.setCarry((v & 1) != 0)
		v = int(Fold(v >> 1))
		cpu.store(ins, v)
		cpu.setZN(v)
	case MN_BIT:
		v := cpu.load(ins)
		cpu.Zero = (int(cpu.A) & v) == 0
		cpu.Overflow = (v & 0x40) != 0
		cpu.Negative = (v & 0x80) != 0
	case MN_CMP:
		cpu.compare(int(cpu.A), cpu.load(ins))
	case MN_CPX:
		cpu.compare(int(cpu.X), cpu.load(ins))
	case MN_CPY:
		cpu.compare(int(cpu.Y), cpu.load(ins))
	case MN_INC:
		v := int(Fold(cpu.load(ins) + 1))
		cpu.store(ins, v)
		cpu.setZN(v)
	case MN_DEC:
		v := int(Fold(cpu.load(ins) - 1))
		cpu.store(ins, v)
		cpu.setZN(v)
	case MN_INX:
		cpu.setX(int(cpu.X) + 1)
	case MN_INY:
		cpu.setY(int(cpu.Y) + 1)
	case MN_DEX:
		cpu.setX(int(cpu.X) - 1)
	case MN_DEY:
		cpu.setY(int(cpu.Y) - 1)
	case MN_LDA:
		cpu.setA(cpu.load(ins))
	case MN_LDX:
		cpu.setX(cpu.load(ins))
	case MN_LDY:
		cpu.setY(cpu.load(ins))
	case MN_STA:
		cpu.store(ins, int(cpu.A))
	case MN_STX:
		cpu.store(ins, int(cpu.X))
	case MN_STY:
		cpu.store(ins, int(cpu.Y))
	case MN_BCC, MN_BCS, MN_BEQ, MN_BNE, MN_BMI, MN_BPL, MN_BVC, MN_BVS:
		cpu.branch(cpu.taken(mn), target)
	case MN_BRANCH:
		// A taken branch to the next instruction still counts as a hit.
		hit := cpu.taken(cpu.Vars.BranchType())
		cpu.branch(hit, target)
		cpu.Vars.setBranchHit(hit)
	case MN_JMP:
		cpu.branch(true, target)
	case MN_JSR:
		cpu.jsr(target)
	case MN_RTS:
		cpu.rts()
	case MN_RTI:
		cpu.popFlags()
		cpu.rts()
	case MN_PHA:
		cpu.push(int(cpu.A))
	case MN_PHP:
		cpu.pushFlags()
	case MN_PLA:
		cpu.setA(cpu.pop())
	case MN_PLP:
		cpu.popFlags()
	case MN_TAX:
		cpu.setX(int(cpu.A))
	case MN_TAY:
		cpu.setY(int(cpu.A))
	case MN_TXA:
		cpu.setA(int(cpu.X))
	case MN_TYA:
		cpu.setA(int(cpu.Y))
	case MN_TSX:
		cpu.setX(0xff - cpu.Stack.Len())
	case MN_TXS:
		cpu.Stack.Resize(int(cpu.X))
	case MN_CLC:
		cpu.Carry = 0
	case MN_SEC:
		cpu.Carry = 1
	case MN_CLV:
		cpu.Overflow = false
	case MN_CLD, MN_CLI, MN_SED, MN_SEI, MN_NOP:
		// Decimal mode and interrupts are not simulated.
	default:
		panic(ErrMnemonicUnknown(mn.String()))
	}
}
