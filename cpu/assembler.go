// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"unicode"
)

// LOCAL_SIGIL starts a local label name.
const LOCAL_SIGIL = "@"

var (
	reLabelPrefix = regexp.MustCompile(`^(\S*?):\s*(.*)$`)
	reLabelName   = regexp.MustCompile(`^([@_a-zA-Z][@_a-zA-Z0-9]*)?$`)
	reLabelRef    = regexp.MustCompile(`^([@_a-zA-Z][@_a-zA-Z0-9]*|:.*)$`)
	reAnonRef     = regexp.MustCompile(`^:[+-]+$`)
	reAnonDir     = regexp.MustCompile(`^:(\++|-+)$`)
	reIndexSplit  = regexp.MustCompile(`\s*,\s*`)
)

// entryKind is the type of a pass 1 entry.
type entryKind int

const (
	ENTRY_OP           = entryKind(0) // Instruction.
	ENTRY_LABEL_GLOBAL = entryKind(1) // Global label placeholder.
	ENTRY_LABEL_LOCAL  = entryKind(2) // Local label placeholder.
	ENTRY_LABEL_ANON   = entryKind(3) // Anonymous label placeholder.
)

// entry is a line item of the program, before labels are stripped.
type entry struct {
	LineNo   int
	Line     string
	Kind     entryKind
	Label    string // Globalized label key, for labels and resolved relative operands.
	Name     string // Label name as written, for local labels.
	Mnemonic Mnemonic
	Mode     Mode
	Arg      string
	Operand  Operand
}

// Assembler is a three pass assembler.
//
//	Pass 1: strip comments, collect labels, classify addressing modes.
//	Pass 2: evaluate expressions and resolve label references.
//	Pass 3: remove label placeholders and assign program indexes.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	entry         []entry
	label         map[string]int // Map of globalized labels to entry indexes.
	currentGlobal string
	anonCount     int
}

// Assemble assembles source text into a Program.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}

// Parse assembles an input stream into a Program.
// Assembly is all-or-nothing: any error returns a nil Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.entry = asm.entry[:0]
	asm.label = make(map[string]int, 16)
	asm.currentGlobal = ""
	asm.anonCount = 0

	err = asm.pass1(input)
	if err != nil {
		return
	}

	err = asm.pass2()
	if err != nil {
		return
	}

	prog, err = asm.pass3()
	if err != nil {
		prog = nil
	}

	return
}

// fail wraps an error with the location of an entry.
func (e *entry) fail(err error) error {
	return &ErrAssembly{LineNo: e.LineNo, Line: e.Line, Err: err}
}

// pass1 tokenizes the source, records labels and classifies modes.
func (asm *Assembler) pass1(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrAssembly{LineNo: lineno, Line: text, Err: err}
		}
	}()

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		for match := reLabelPrefix.FindStringSubmatch(line); match != nil; match = reLabelPrefix.FindStringSubmatch(line) {
			err = asm.addLabel(lineno, text, match[1])
			if err != nil {
				return
			}
			line = match[2]
		}
		if len(line) == 0 {
			continue
		}

		name, args := line, ""
		if space := strings.IndexFunc(line, unicode.IsSpace); space >= 0 {
			name, args = line[:space], strings.TrimSpace(line[space:])
		}

		mn, ok := LookupMnemonic(name)
		if !ok {
			err = ErrMnemonicUnknown(strings.ToLower(name))
			return
		}

		var mode Mode
		mode, args, err = addrMode(mn, args)
		if err != nil {
			return
		}
		if !mn.Modes().Has(mode) {
			err = ErrModeIllegal{Mnemonic: mn, Mode: mode}
			return
		}

		asm.entry = append(asm.entry, entry{
			LineNo:   lineno,
			Line:     text,
			Kind:     ENTRY_OP,
			Mnemonic: mn,
			Mode:     mode,
			Arg:      args,
		})
	}

	err = scanner.Err()
	return
}

// addLabel checks and records a label definition.
func (asm *Assembler) addLabel(lineno int, text string, name string) (err error) {
	if !reLabelName.MatchString(name) {
		err = ErrLabelInvalid(name)
		return
	}

	e := entry{LineNo: lineno, Line: text}

	switch {
	case len(name) == 0:
		asm.anonCount++
		e.Kind = ENTRY_LABEL_ANON
		e.Label = fmt.Sprintf("anon#%d", asm.anonCount)
	case strings.HasPrefix(name, LOCAL_SIGIL):
		if len(asm.currentGlobal) == 0 {
			err = ErrLocalScope
			return
		}
		e.Kind = ENTRY_LABEL_LOCAL
		e.Label = name + "#" + asm.currentGlobal
		e.Name = name
	default:
		e.Kind = ENTRY_LABEL_GLOBAL
		e.Label = name
		asm.currentGlobal = name
	}

	_, ok := asm.label[e.Label]
	if ok {
		err = ErrLabelDuplicate(name)
		return
	}

	asm.label[e.Label] = len(asm.entry)
	asm.entry = append(asm.entry, e)

	return
}

// addrMode determines the addressing mode from the argument text, and
// returns the argument with any mode prefix removed.
func addrMode(mn Mnemonic, args string) (mode Mode, arg string, err error) {
	switch args {
	case "":
		mode = MODE_IMPLICIT
		return
	case "A", "a":
		mode = MODE_ACCUMULATOR
		return
	case "X", "x", "Y", "y":
		err = ErrRegisterWrong
		return
	}

	if strings.HasPrefix(args, "#") {
		if args == "#" {
			err = ErrImmediateMissing
			return
		}
		mode = MODE_IMMEDIATE
		arg = args[1:]
		return
	}

	if strings.HasPrefix(args, "(") {
		err = ErrIndirectUnsupported
		return
	}

	parts := reIndexSplit.Split(args, -1)
	if len(parts) > 2 {
		err = ErrArgumentsExcess
		return
	}
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "x", "y":
			err = ErrIndexedUnsupported
		default:
			err = ErrIndexInvalid
		}
		return
	}

	arg = args
	modes := mn.Modes()
	switch {
	case modes.Has(MODE_RELATIVE):
		mode = MODE_RELATIVE
	case modes.Has(MODE_ABSOLUTE):
		mode = MODE_ABSOLUTE
	default:
		mode = MODE_ZERO_PAGE
	}

	return
}

// pass2 evaluates operands and resolves label references to globalized keys.
func (asm *Assembler) pass2() (err error) {
	asm.currentGlobal = ""

	for n := range asm.entry {
		e := &asm.entry[n]

		if e.Kind == ENTRY_LABEL_GLOBAL {
			asm.currentGlobal = e.Label
		}
		if e.Kind != ENTRY_OP {
			continue
		}

		switch {
		case e.Mode == MODE_IMMEDIATE:
			var value int
			value, err = parseImmediate(e.Arg)
			e.Operand = Operand{Kind: OPERAND_VALUE, Value: value}
		case e.Mode == MODE_RELATIVE:
			e.Label, err = asm.findLabelRef(n, e.Arg)
		case e.Mode.IsVariable():
			var key VarKey
			key, err = parseVariable(e.Arg)
			e.Operand = Operand{Kind: OPERAND_VAR, Var: key}
		}
		if err != nil {
			err = e.fail(err)
			return
		}
	}

	return
}

// checkLabel verifies that the label table and the entry list agree.
func (asm *Assembler) checkLabel(label string, kind entryKind) (err error) {
	index, ok := asm.label[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}
	if index < 0 || index >= len(asm.entry) {
		err = ErrLabelMapping
		return
	}
	e := &asm.entry[index]
	if e.Kind != kind || e.Label != label {
		err = ErrLabelMapping
		return
	}
	return
}

// findLabelRef resolves a label reference made by the entry at index n.
func (asm *Assembler) findLabelRef(n int, ref string) (label string, err error) {
	if !reLabelRef.MatchString(ref) {
		err = ErrLabelInvalid(ref)
		return
	}

	switch {
	case strings.HasPrefix(ref, LOCAL_SIGIL):
		if len(asm.currentGlobal) == 0 {
			err = ErrLocalScope
			return
		}
		label = ref + "#" + asm.currentGlobal
		if _, ok := asm.label[label]; !ok {
			err = ErrLabelMissing(ref)
			return
		}
		err = asm.checkLabel(label, ENTRY_LABEL_LOCAL)
		if err == nil && asm.entry[asm.label[label]].Name != ref {
			err = ErrLabelMapping
		}
		return
	case !strings.HasPrefix(ref, ":"):
		label = ref
		err = asm.checkLabel(label, ENTRY_LABEL_GLOBAL)
		return
	}

	// Anonymous label reference
	switch {
	case ref == ":":
		err = ErrAnonNoDir
		return
	case !reAnonRef.MatchString(ref):
		err = ErrAnonInvalid
		return
	case !reAnonDir.MatchString(ref):
		err = ErrAnonMixed
		return
	}

	steps := len(ref) - 1
	step := 1
	if ref[1] == '-' {
		step = -1
	}

	index := n
	for index += step; index >= 0 && index < len(asm.entry); index += step {
		if asm.entry[index].Kind != ENTRY_LABEL_ANON {
			continue
		}
		steps--
		if steps == 0 {
			break
		}
	}
	if steps != 0 {
		err = ErrAnonNotFound
		return
	}

	label = asm.entry[index].Label
	err = asm.checkLabel(label, ENTRY_LABEL_ANON)
	return
}

// pass3 strips the label placeholders and resolves relative operands to
// program indexes.
func (asm *Assembler) pass3() (prog *Program, err error) {
	index := make(map[string]int, len(asm.label))
	code := make([]Instruction, 0, len(asm.entry))
	ops := make([]*entry, 0, len(asm.entry))

	for n := range asm.entry {
		e := &asm.entry[n]
		if e.Kind == ENTRY_OP {
			code = append(code, Instruction{})
			ops = append(ops, e)
			continue
		}
		if at, ok := asm.label[e.Label]; !ok || at != n {
			err = e.fail(ErrLabelMapping)
			return
		}
		index[e.Label] = len(code)
	}

	if len(index) != len(asm.label) {
		err = &ErrAssembly{Err: fmt.Errorf("%w: %d vs %d labels", ErrLabelMapping, len(index), len(asm.label))}
		return
	}

	for n, e := range ops {
		if e.Mode == MODE_RELATIVE {
			target, ok := index[e.Label]
			if !ok {
				err = e.fail(ErrLabelMissing(e.Label))
				return
			}
			e.Operand = Operand{Kind: OPERAND_TARGET, Value: target}
		}
		code[n] = Instruction{
			LineNo:   e.LineNo,
			Mnemonic: e.Mnemonic,
			Mode:     e.Mode,
			Operand:  e.Operand,
		}
	}

	prog = &Program{code: code}

	return
}
