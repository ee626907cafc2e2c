package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/branchscope/emulator"
)

// Glyphs used by the text report.
var outcomeGlyph = map[emulator.Outcome]byte{
	emulator.OUTCOME_INCOMPLETE: '#',
	emulator.OUTCOME_NO_BRANCH:  '.',
	emulator.OUTCOME_SAME:       '=',
	emulator.OUTCOME_SET:        'S',
	emulator.OUTCOME_CLEAR:      'c',
}

// Grid is the result of scanning one pair over a window.
type Grid struct {
	Pair emulator.Pair
	X, Y int // Top left coordinate.
	Size int // Cells per side.

	cells []emulator.Cell // Row major.
}

// Cell returns the cell at an offset from the top left of the window.
func (grid *Grid) Cell(dx, dy int) (cell emulator.Cell, ok bool) {
	if dx < 0 || dx >= grid.Size || dy < 0 || dy >= grid.Size {
		return
	}
	return grid.cells[dy*grid.Size+dx], true
}

// Cells iterates over the cells, row by row.
func (grid *Grid) Cells() iter.Seq[emulator.Cell] {
	return slices.Values(grid.cells)
}

// Moves iterates over the moves of every cell, row by row.
func (grid *Grid) Moves() iter.Seq[emulator.Move] {
	return func(yield func(emulator.Move) bool) {
		for n := range grid.cells {
			for _, mv := range grid.cells[n].Moves() {
				if !yield(mv) {
					return
				}
			}
		}
	}
}

// Count returns the number of cells with an outcome.
func (grid *Grid) Count(outcome emulator.Outcome) (count int) {
	for _, cell := range grid.cells {
		if cell.Outcome == outcome {
			count++
		}
	}
	return
}

// Rows returns one string of outcome glyphs per row.
func (grid *Grid) Rows() (rows []string) {
	row := make([]byte, grid.Size)
	for dy := range grid.Size {
		for dx := range grid.Size {
			row[dx] = outcomeGlyph[grid.cells[dy*grid.Size+dx].Outcome]
		}
		rows = append(rows, string(row))
	}
	return
}

// WriteText writes a text report: the outcome map, the outcome counts
// and the move list.
func (grid *Grid) WriteText(w io.Writer) (err error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%v (%v/%v) at (%d, %d), %dx%d\n",
		grid.Pair.Name, grid.Pair.Set, grid.Pair.Clear, grid.X, grid.Y, grid.Size, grid.Size)

	for dy, row := range grid.Rows() {
		fmt.Fprintf(&sb, "%4d %s\n", grid.Y+dy, row)
	}

	for n, outcome := range emulator.Outcomes {
		if n > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%c %v=%d", outcomeGlyph[outcome], outcome, grid.Count(outcome))
	}
	sb.WriteString("\n")

	for mv := range grid.Moves() {
		fmt.Fprintf(&sb, "%-5v (%d, %d) -> (%d, %d)\n", mv.Kind, mv.FromX, mv.FromY, mv.ToX, mv.ToY)
	}

	_, err = io.WriteString(w, sb.String())
	return
}

type gridJSON struct {
	Pair   string          `json:"pair"`
	Set    string          `json:"set"`
	Clear  string          `json:"clear"`
	X      int             `json:"x"`
	Y      int             `json:"y"`
	Size   int             `json:"size"`
	Rows   []string        `json:"rows"`
	Counts map[string]int  `json:"counts"`
	Moves  []emulator.Move `json:"moves"`
}

func (grid *Grid) MarshalJSON() ([]byte, error) {
	out := gridJSON{
		Pair:   grid.Pair.Name,
		Set:    grid.Pair.Set.String(),
		Clear:  grid.Pair.Clear.String(),
		X:      grid.X,
		Y:      grid.Y,
		Size:   grid.Size,
		Rows:   grid.Rows(),
		Counts: map[string]int{},
		Moves:  slices.Collect(grid.Moves()),
	}

	for _, outcome := range emulator.Outcomes {
		out.Counts[outcome.String()] = grid.Count(outcome)
	}
	if out.Moves == nil {
		out.Moves = []emulator.Move{}
	}

	return json.Marshal(&out)
}
