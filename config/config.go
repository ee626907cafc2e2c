// Package config loads scan scenarios.
//
// A scenario is a Starlark file whose globals describe what to scan:
//
//	source_file = "collide.s"    # or: source = """...assembly..."""
//	x, y = 100, 80               # top left of the window
//	size = WINDOW
//	ticks = TICKS
//	pairs = [CARRY, ZERO, ("beq", "bcc")]
//	x_var, y_var = "PlayerX", "PlayerY"
//
// Every global is optional except the source.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/branchscope/cpu"
	"github.com/ezrec/branchscope/emulator"
	"github.com/ezrec/branchscope/scan"
)

// Scenario is a scan configuration.
type Scenario struct {
	Source     string          // Assembly source text.
	SourceFile string          // Path the source was read from, if any.
	X, Y       int             // Top left coordinate of the window.
	Size       int             // Cells per side.
	Ticks      int             // Tick budget per run.
	Pairs      []emulator.Pair // Pairs to scan, in order.
	XVar, YVar string          // Coordinate variables.
}

// Default returns a scenario with every value but the source set.
func Default() (sc *Scenario) {
	sc = &Scenario{
		Size:  scan.WINDOW,
		Ticks: cpu.TICK_BUDGET,
		Pairs: append([]emulator.Pair{}, emulator.Pairs...),
		XVar:  emulator.X_VAR,
		YVar:  emulator.Y_VAR,
	}
	return
}

// predeclared returns the constants visible to a scenario.
func predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"WINDOW": starlark.MakeInt(scan.WINDOW),
	}

	for key, value := range (&emulator.Emulator{}).Defines() {
		pred[key] = starlark.MakeInt(value)
	}

	for _, pair := range emulator.Pairs {
		pred[strings.ToUpper(pair.Name)] = starlark.String(pair.Name)
	}

	return
}

// Load reads and evaluates a scenario file.
func Load(filename string) (sc *Scenario, err error) {
	return Parse(filename, nil)
}

// Parse evaluates a scenario. If src is nil, the file is read.
// A relative source_file is relative to the scenario's directory.
func Parse(filename string, src any) (sc *Scenario, err error) {
	defer func() {
		if err != nil {
			sc = nil
			err = &ErrScenario{File: filename, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared())
	if err != nil {
		return
	}

	sc = Default()

	source, hasSource, err := getString(globals, "source")
	if err != nil {
		return
	}
	sourceFile, hasSourceFile, err := getString(globals, "source_file")
	if err != nil {
		return
	}

	switch {
	case hasSource && hasSourceFile:
		err = ErrSourceConflict
		return
	case hasSource:
		sc.Source = source
	case hasSourceFile:
		if !filepath.IsAbs(sourceFile) {
			sourceFile = filepath.Join(filepath.Dir(filename), sourceFile)
		}
		var data []byte
		data, err = os.ReadFile(sourceFile)
		if err != nil {
			return
		}
		sc.Source = string(data)
		sc.SourceFile = sourceFile
	default:
		err = ErrSourceMissing
		return
	}

	for name, value := range map[string]*int{
		"x":     &sc.X,
		"y":     &sc.Y,
		"size":  &sc.Size,
		"ticks": &sc.Ticks,
	} {
		err = getInt(globals, name, value)
		if err != nil {
			return
		}
	}

	for name, value := range map[string]*string{
		"x_var": &sc.XVar,
		"y_var": &sc.YVar,
	} {
		var str string
		var ok bool
		str, ok, err = getString(globals, name)
		if err != nil {
			return
		}
		if ok {
			*value = str
		}
	}

	if value, ok := globals["pairs"]; ok {
		sc.Pairs, err = getPairs(value)
		if err != nil {
			return
		}
	}

	err = sc.Validate()
	return
}

// Validate checks the ranges of the scenario values.
func (sc *Scenario) Validate() (err error) {
	switch {
	case sc.X < 0 || sc.X > emulator.MAX_X:
		err = ErrValueRange{Name: "x", Value: sc.X}
	case sc.Y < 0 || sc.Y > emulator.MAX_Y:
		err = ErrValueRange{Name: "y", Value: sc.Y}
	case sc.Size < 1:
		err = ErrValueRange{Name: "size", Value: sc.Size}
	case sc.Ticks < 1:
		err = ErrValueRange{Name: "ticks", Value: sc.Ticks}
	case len(sc.Pairs) == 0:
		err = ErrPairsEmpty
	case len(sc.XVar) == 0:
		err = ErrValueType{Name: "x_var", Want: "a variable name"}
	case len(sc.YVar) == 0:
		err = ErrValueType{Name: "y_var", Want: "a variable name"}
	}
	for _, pair := range sc.Pairs {
		if err != nil {
			break
		}
		if !pair.Set.IsConditionalBranch() {
			err = cpu.ErrBranchType(pair.Set.String())
		} else if !pair.Clear.IsConditionalBranch() {
			err = cpu.ErrBranchType(pair.Clear.String())
		}
	}
	return
}

// Emulator assembles the source, and returns an emulator for it.
func (sc *Scenario) Emulator(verbose bool) (emu *emulator.Emulator, err error) {
	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(strings.NewReader(sc.Source))
	if err != nil {
		return
	}

	emu = emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.Ticks = sc.Ticks
	emu.XVar = sc.XVar
	emu.YVar = sc.YVar

	return
}

// Scanner returns a scanner over the scenario window.
func (sc *Scenario) Scanner(verbose bool) (s *scan.Scanner, err error) {
	emu, err := sc.Emulator(verbose)
	if err != nil {
		return
	}

	s = &scan.Scanner{
		Verbose:  verbose,
		Emulator: emu,
		X:        sc.X,
		Y:        sc.Y,
		Size:     sc.Size,
	}

	return
}

func getString(globals starlark.StringDict, name string) (str string, ok bool, err error) {
	value, ok := globals[name]
	if !ok {
		return
	}
	str, ok = starlark.AsString(value)
	if !ok {
		err = ErrValueType{Name: name, Want: "a string"}
	}
	return
}

func getInt(globals starlark.StringDict, name string, out *int) (err error) {
	value, ok := globals[name]
	if !ok {
		return
	}
	n, err := starlark.AsInt32(value)
	if err != nil {
		err = ErrValueType{Name: name, Want: "an integer"}
		return
	}
	*out = n
	return
}

// getPairs converts a sequence of pair names or (set, clear) tuples.
func getPairs(value starlark.Value) (pairs []emulator.Pair, err error) {
	seq, ok := value.(starlark.Iterable)
	if !ok {
		err = ErrValueType{Name: "pairs", Want: "a list"}
		return
	}

	it := seq.Iterate()
	defer it.Done()

	var item starlark.Value
	for it.Next(&item) {
		var pair emulator.Pair
		if name, ok := starlark.AsString(item); ok {
			pair, err = emulator.LookupPair(name)
		} else if tuple, ok := item.(starlark.Indexable); ok && tuple.Len() == 2 {
			setName, ok1 := starlark.AsString(tuple.Index(0))
			clearName, ok2 := starlark.AsString(tuple.Index(1))
			if !ok1 || !ok2 {
				err = ErrValueType{Name: "pairs", Want: "names or (set, clear) tuples"}
				return
			}
			pair, err = emulator.NewPair(setName, clearName)
		} else {
			err = ErrValueType{Name: "pairs", Want: "names or (set, clear) tuples"}
		}
		if err != nil {
			return
		}
		pairs = append(pairs, pair)
	}

	return
}
