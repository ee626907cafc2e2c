package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/branchscope/cpu"
	"github.com/ezrec/branchscope/emulator"
)

// collide resets PlayerX when the branch is taken.
const collide = `
start: lda PlayerX
       cmp #$10       ; carry set when PlayerX >= 16
       branch @hit
       rts
@hit:  lda #0
       sta PlayerX
`

func newScanner(t *testing.T, x, y, size int) (s *Scanner) {
	prog, err := cpu.Assemble(collide)
	if err != nil {
		t.Fatal(err)
	}

	emu := emulator.NewEmulator(prog)
	emu.Logger = log.New(io.Discard, "", 0)

	s = &Scanner{
		Emulator: emu,
		X:        x,
		Y:        y,
		Size:     size,
	}
	return
}

func TestScanner(t *testing.T) {
	assert := assert.New(t)

	s := newScanner(t, 10, 0, 8)
	carry, _ := emulator.LookupPair("carry")

	grid, err := s.Run(context.Background(), carry)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(8, grid.Size)
	assert.Equal(16, grid.Count(emulator.OUTCOME_SET))
	assert.Equal(48, grid.Count(emulator.OUTCOME_CLEAR))
	assert.Equal(0, grid.Count(emulator.OUTCOME_INCOMPLETE))

	cell, ok := grid.Cell(6, 3)
	assert.True(ok)
	assert.Equal(16, cell.X)
	assert.Equal(3, cell.Y)
	assert.Equal(emulator.OUTCOME_SET, cell.Outcome)

	_, ok = grid.Cell(8, 0)
	assert.False(ok)
	_, ok = grid.Cell(0, -1)
	assert.False(ok)

	assert.Equal("ccccccSS", grid.Rows()[0])

	moves := slices.Collect(grid.Moves())
	assert.Len(moves, 64)
	assert.Equal(emulator.Move{Kind: emulator.MOVE_CLEAR, FromX: 10, FromY: 0, ToX: 0, ToY: 0}, moves[0])
}

func TestScannerWorkers(t *testing.T) {
	assert := assert.New(t)

	zero, _ := emulator.LookupPair("zero")

	s := newScanner(t, 0, 100, 24)
	s.Workers = 1
	serial, err := s.Run(context.Background(), zero)
	assert.NoError(err)

	s.Workers = 8
	parallel, err := s.Run(context.Background(), zero)
	assert.NoError(err)

	assert.Equal(serial, parallel)
	assert.Equal(24, parallel.Count(emulator.OUTCOME_SET))
}

func TestScannerRunAll(t *testing.T) {
	assert := assert.New(t)

	s := newScanner(t, 0, 0, 4)
	grids, err := s.RunAll(context.Background(), emulator.Pairs)
	assert.NoError(err)
	if assert.Len(grids, 4) {
		for n, grid := range grids {
			assert.Equal(emulator.Pairs[n], grid.Pair)
		}
	}
}

func TestScannerErr(t *testing.T) {
	assert := assert.New(t)

	carry, _ := emulator.LookupPair("carry")

	s := &Scanner{}
	_, err := s.Run(context.Background(), carry)
	assert.ErrorIs(err, emulator.ErrProgramMissing)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s = newScanner(t, 0, 0, 4)
	grid, err := s.Run(ctx, carry)
	assert.ErrorIs(err, context.Canceled)
	assert.Nil(grid)

	bad := emulator.Pair{Name: "bad", Set: cpu.MN_LDA, Clear: cpu.MN_BCC}
	grid, err = s.Run(context.Background(), bad)
	assert.Nil(grid)
	assert.ErrorIs(err, cpu.ErrBranchType("lda"))
	var re *emulator.ErrRuntime
	assert.ErrorAs(err, &re)

	grids, err := s.RunAll(context.Background(), []emulator.Pair{carry, bad})
	assert.Error(err)
	assert.Nil(grids)
}

func TestGridWriteText(t *testing.T) {
	assert := assert.New(t)

	s := newScanner(t, 15, 0, 2)
	carry, _ := emulator.LookupPair("carry")
	grid, err := s.Run(context.Background(), carry)
	if !assert.NoError(err) {
		return
	}

	expected := "" +
		"carry (bcs/bcc) at (15, 0), 2x2\n" +
		"   0 cS\n" +
		"   1 cS\n" +
		"# incomplete=0  . no-branch=0  = same=0  S set=2  c clear=2\n" +
		"clear (15, 0) -> (0, 0)\n" +
		"set   (16, 0) -> (0, 0)\n" +
		"clear (15, 1) -> (0, 1)\n" +
		"set   (16, 1) -> (0, 1)\n"

	var buf bytes.Buffer
	assert.NoError(grid.WriteText(&buf))
	assert.Equal(expected, buf.String())
}

func TestGridJSON(t *testing.T) {
	assert := assert.New(t)

	s := newScanner(t, 15, 0, 2)
	carry, _ := emulator.LookupPair("carry")
	grid, err := s.Run(context.Background(), carry)
	if !assert.NoError(err) {
		return
	}

	data, err := json.Marshal(grid)
	if !assert.NoError(err) {
		return
	}

	var out struct {
		Pair   string
		Set    string
		Clear  string
		X, Y   int
		Size   int
		Rows   []string
		Counts map[string]int
		Moves  []struct {
			Kind  string
			FromX int `json:"from_x"`
			ToX   int `json:"to_x"`
		}
	}
	assert.NoError(json.Unmarshal(data, &out))

	assert.Equal("carry", out.Pair)
	assert.Equal("bcs", out.Set)
	assert.Equal("bcc", out.Clear)
	assert.Equal(15, out.X)
	assert.Equal(2, out.Size)
	assert.Equal([]string{"cS", "cS"}, out.Rows)
	assert.Equal(2, out.Counts["set"])
	assert.Equal(0, out.Counts["no-branch"])
	if assert.Len(out.Moves, 4) {
		assert.Equal("clear", out.Moves[0].Kind)
		assert.Equal(15, out.Moves[0].FromX)
		assert.Equal(0, out.Moves[0].ToX)
	}
}
