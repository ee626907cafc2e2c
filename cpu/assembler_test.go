package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program ...string) *Program {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func opEqual(t *testing.T, expected []Instruction, prog *Program) {
	assert := assert.New(t)

	assert.Equal(len(expected), prog.Len())
	if len(expected) == prog.Len() {
		for n, ins := range prog.Instructions() {
			assert.Equal(expected[n], ins, "index %d", n)
		}
	}
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())

	prog, err = Assemble("; only a comment\n\n   \n")
	assert.NoError(err)
	assert.Equal(0, prog.Len())
}

func TestAssemblerModes(t *testing.T) {
	program := []string{
		"  clc          ; implicit",
		"  ASL A        ; accumulator, upper case",
		"  lda #$10     ; immediate",
		"  lda PlayerX  ; variable",
		"\tsta\tPlayerY",
		"  rol a",
		"  bit flags",
	}

	expected := []Instruction{
		{1, MN_CLC, MODE_IMPLICIT, Operand{}},
		{2, MN_ASL, MODE_ACCUMULATOR, Operand{}},
		{3, MN_LDA, MODE_IMMEDIATE, Operand{Kind: OPERAND_VALUE, Value: 0x10}},
		{4, MN_LDA, MODE_ABSOLUTE, Operand{Kind: OPERAND_VAR, Var: Var("PlayerX")}},
		{5, MN_STA, MODE_ABSOLUTE, Operand{Kind: OPERAND_VAR, Var: Var("PlayerY")}},
		{6, MN_ROL, MODE_ACCUMULATOR, Operand{}},
		{7, MN_BIT, MODE_ABSOLUTE, Operand{Kind: OPERAND_VAR, Var: Var("flags")}},
	}

	opEqual(t, expected, assemble(t, program...))
}

func TestAssemblerImmediate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr  string
		value int
	}){
		{"0", 0},
		{"255", 255},
		{"1_000", 1000},
		{"$ff", 255},
		{"$FF", 255},
		{"0x1F", 31},
		{"0X10", 16},
		{"%1010_0101", 0xa5},
		{"-1", -1},
		{"--5", 5},
		{"-$ff", -255},
		{"$10+%101-0x2", 19},
		{" 1 + 2 - 3 ", 0},
		{"+7", 7},
	}

	for _, entry := range table {
		prog, err := Assemble("lda #" + entry.expr)
		if !assert.NoError(err, entry.expr) {
			continue
		}
		ins, ok := prog.At(0)
		assert.True(ok)
		assert.Equal(Operand{Kind: OPERAND_VALUE, Value: entry.value}, ins.Operand, entry.expr)
	}
}

func TestAssemblerVariable(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr string
		key  VarKey
	}){
		{"PlayerX", VarKey{Name: "PlayerX"}},
		{"PlayerX+3", VarKey{Name: "PlayerX", Offset: 3}},
		{"PlayerX - 2", VarKey{Name: "PlayerX", Offset: -2}},
		{"1+PlayerX", VarKey{Name: "PlayerX", Offset: 1}},
		{"foo+1-1", VarKey{Name: "foo"}},
		{"2+3", VarKey{Offset: 5}},
		{"$10", VarKey{Offset: 16}},
		{"_tmp", VarKey{Name: "_tmp"}},
	}

	for _, entry := range table {
		prog, err := Assemble("sta " + entry.expr)
		if !assert.NoError(err, entry.expr) {
			continue
		}
		ins, _ := prog.At(0)
		assert.Equal(Operand{Kind: OPERAND_VAR, Var: entry.key}, ins.Operand, entry.expr)
	}
}

func TestAssemblerLabel(t *testing.T) {
	program := []string{
		"loop: nop",
		"jmp loop",
		"R1: R2:",
		"",
		"jsr R2",
		"jmp end",
		"end:",
	}

	expected := []Instruction{
		{1, MN_NOP, MODE_IMPLICIT, Operand{}},
		{2, MN_JMP, MODE_RELATIVE, Operand{Kind: OPERAND_TARGET, Value: 0}},
		{5, MN_JSR, MODE_RELATIVE, Operand{Kind: OPERAND_TARGET, Value: 2}},
		{6, MN_JMP, MODE_RELATIVE, Operand{Kind: OPERAND_TARGET, Value: 4}},
	}

	opEqual(t, expected, assemble(t, program...))
}

func TestAssemblerLabelAnonymous(t *testing.T) {
	assert := assert.New(t)

	// The forward reference skips exactly one marker.
	prog := assemble(t,
		":",
		"nop",
		"jmp :+",
		":",
		"nop",
	)
	ins, _ := prog.At(1)
	assert.Equal(MN_JMP, ins.Mnemonic)
	assert.Equal(2, ins.Operand.Value)

	prog = assemble(t,
		":",       // anon 1 -> 0
		"nop",     // 0
		": nop",   // anon 2 -> 1
		"bne :-",  // 2
		"beq :--", // 3
		"bcc :++", // 4
		":",       // anon 3 -> 5
		"nop",     // 5
		":",       // anon 4 -> 6
	)
	targets := []int{}
	for _, ins := range prog.Instructions() {
		if ins.Mode == MODE_RELATIVE {
			targets = append(targets, ins.Operand.Value)
		}
	}
	assert.Equal([]int{1, 0, 6}, targets)
}

func TestAssemblerLabelLocal(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"foo:",
		"@x: nop",  // 0
		"jmp @x",   // 1
		"bar:",     //
		"@x: nop",  // 2
		"jmp @x",   // 3
		"baz: nop", // 4
		"bne @y",   // 5
		"@y:",      // 6
	)

	ins, _ := prog.At(1)
	assert.Equal(0, ins.Operand.Value)
	ins, _ = prog.At(3)
	assert.Equal(2, ins.Operand.Value)
	ins, _ = prog.At(5)
	assert.Equal(6, ins.Operand.Value)

	// Local label referenced before any global label.
	_, err := Assemble("jmp @x\nfoo:\n@x: nop\n")
	assert.ErrorIs(err, ErrLocalScope)
	var ae *ErrAssembly
	if assert.ErrorAs(err, &ae) {
		assert.Equal(1, ae.LineNo)
	}

	// Local label referenced from another scope.
	_, err = Assemble("foo:\n@x: nop\nbar:\njmp @x\n")
	assert.ErrorIs(err, ErrLabelMissing("@x"))
}

func TestAssemblerDeterministic(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"start: lda PlayerX",
		"  cmp #$20",
		"  branch @hit",
		"  jmp :+",
		"@hit: inc PlayerX+1",
		": rts",
	}

	a := assemble(t, program...)
	b := assemble(t, program...)
	assert.Equal(a, b)
	assert.Equal(a.Listing(), b.Listing())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"DUP:\nDUP:\n", 2, ErrLabelDuplicate("DUP")},
		{"foo:\n@x: nop\n@x: nop\n", 3, ErrLabelDuplicate("@x")},
		{"9bad: nop", 1, ErrLabelInvalid("9bad")},
		{"a-b: nop", 1, ErrLabelInvalid("a-b")},
		{"@x: nop", 1, ErrLocalScope},
		{"foo bar", 1, ErrMnemonicUnknown("foo")},
		{"nop\n\nfrob", 3, ErrMnemonicUnknown("frob")},
		{"lda x", 1, ErrRegisterWrong},
		{"ldx Y", 1, ErrRegisterWrong},
		{"lda #", 1, ErrImmediateMissing},
		{"lda (ptr),y", 1, ErrIndirectUnsupported},
		{"jmp (vector)", 1, ErrIndirectUnsupported},
		{"lda ptr,x", 1, ErrIndexedUnsupported},
		{"sta ptr , Y", 1, ErrIndexedUnsupported},
		{"lda ptr,z", 1, ErrIndexInvalid},
		{"lda a,b,c", 1, ErrArgumentsExcess},
		{"nop #1", 1, ErrModeIllegal{Mnemonic: MN_NOP, Mode: MODE_IMMEDIATE}},
		{"sta #1", 1, ErrModeIllegal{Mnemonic: MN_STA, Mode: MODE_IMMEDIATE}},
		{"lda a", 1, ErrModeIllegal{Mnemonic: MN_LDA, Mode: MODE_ACCUMULATOR}},
		{"asl", 1, ErrModeIllegal{Mnemonic: MN_ASL, Mode: MODE_IMPLICIT}},
		{"rts foo", 1, ErrModeIllegal{Mnemonic: MN_RTS, Mode: MODE_ZERO_PAGE}},
		{"lda #5+", 1, ErrTrailingSign},
		{"lda foo-", 1, ErrTrailingSign},
		{"lda #$zz", 1, ErrParseNumber("$zz")},
		{"lda #%102", 1, ErrParseNumber("%102")},
		{"lda #12ab", 1, ErrParseNumber("12ab")},
		{"lda #$", 1, ErrParseNumber("$")},
		{"lda foo+bar", 1, ErrVariableMultiple},
		{"lda 3-foo", 1, ErrVariableNegated},
		{"jmp nowhere", 1, ErrLabelMissing("nowhere")},
		{"jmp 9bad", 1, ErrLabelInvalid("9bad")},
		{"jmp :", 1, ErrAnonNoDir},
		{"jmp :+-", 1, ErrAnonMixed},
		{"jmp :x", 1, ErrAnonInvalid},
		{"jmp :+\n", 1, ErrAnonNotFound},
		{":\nbne :--", 2, ErrAnonNotFound},
	}

	for _, entry := range table {
		prog, err := asm.Parse(strings.NewReader(entry.prog))
		assert.Nil(prog, entry.prog)
		var ae *ErrAssembly
		if assert.ErrorAs(err, &ae, entry.prog) {
			assert.Equal(entry.line, ae.LineNo, entry.prog)
			assert.ErrorIs(err, entry.err, entry.prog)
		}
	}
}
