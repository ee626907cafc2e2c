// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"
	"maps"

	"github.com/ezrec/branchscope/cpu"
)

const (
	MAX_X = 223 // Largest X coordinate of the play field.
	MAX_Y = 207 // Largest Y coordinate of the play field.

	X_VAR = "PlayerX" // Default X coordinate variable.
	Y_VAR = "PlayerY" // Default Y coordinate variable.
)

var _emulator_defines = map[string]int{
	"MAX_X": MAX_X,
	"MAX_Y": MAX_Y,
	"TICKS": cpu.TICK_BUDGET,
}

// Emulator runs a program from a seeded coordinate, once per branch
// hypothesis. Every run gets a fresh CPU, so an Emulator may be shared by
// concurrent callers once configured.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Program *cpu.Program // Program under analysis.
	Ticks   int          // Tick budget per run. Defaults to cpu.TICK_BUDGET.
	XVar    string       // X coordinate variable. Defaults to X_VAR.
	YVar    string       // Y coordinate variable. Defaults to Y_VAR.
	Logger  *log.Logger  // Diagnostic output. Defaults to log.Default().
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Program: prog,
	}

	return
}

// Defines returns an iterator over the emulator constants.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return maps.All(_emulator_defines)
}

func (emu *Emulator) logger() *log.Logger {
	if emu.Logger == nil {
		return log.Default()
	}
	return emu.Logger
}

// Budget returns the tick budget of a single run.
func (emu *Emulator) Budget() int {
	if emu.Ticks <= 0 {
		return cpu.TICK_BUDGET
	}
	return emu.Ticks
}

// Coordinates returns the variables holding the X and Y coordinates.
func (emu *Emulator) Coordinates() (x, y cpu.VarKey) {
	x, y = cpu.Var(X_VAR), cpu.Var(Y_VAR)
	if len(emu.XVar) != 0 {
		x = cpu.Var(emu.XVar)
	}
	if len(emu.YVar) != 0 {
		y = cpu.Var(emu.YVar)
	}
	return
}

// Result is the read-back of a single run.
type Result struct {
	Branch cpu.Mnemonic // Branch type selected for the run.
	Done   bool         // Run completed within the tick budget.
	StartX int          // Seeded X coordinate.
	StartY int          // Seeded Y coordinate.
	X      int          // Final X coordinate.
	Y      int          // Final Y coordinate.
	Hit    bool         // The last `branch` was taken.
	HitSet bool         // At least one `branch` was executed.
	Ticks  int          // Instructions executed.
}

// Moved returns true if the run changed either coordinate.
func (res Result) Moved() bool {
	return res.X != res.StartX || res.Y != res.StartY
}

// Run the program once from (x, y), with `branch` emulating the given
// conditional branch.
func (emu *Emulator) Run(x, y int, branch cpu.Mnemonic) (res Result, err error) {
	defer func() {
		if err != nil {
			err = &ErrRuntime{X: x, Y: y, Err: err}
		}
	}()

	if emu.Program == nil {
		err = ErrProgramMissing
		return
	}

	c := cpu.NewCpu(emu.Program)
	c.Verbose = emu.Verbose
	c.Logger = emu.logger()

	err = c.Vars.SetBranchType(branch)
	if err != nil {
		return
	}

	xVar, yVar := emu.Coordinates()
	c.Vars.Set(xVar, x)
	c.Vars.Set(yVar, y)

	res = Result{
		Branch: branch,
		StartX: x,
		StartY: y,
	}

	res.Done = c.Run(emu.Budget())
	res.X = c.Vars.Get(xVar)
	res.Y = c.Vars.Get(yVar)
	res.Hit, res.HitSet = c.Vars.BranchHit()
	res.Ticks = c.Ticks

	if emu.Verbose {
		emu.logger().Printf("emulator: (%d, %d) %v: done=%v hit=%v/%v -> (%d, %d) in %d ticks",
			x, y, branch, res.Done, res.Hit, res.HitSet, res.X, res.Y, res.Ticks)
	}

	return
}
