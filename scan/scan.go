// Package scan compares branch hypotheses over a square window of
// coordinates.
package scan

import (
	"context"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/branchscope/emulator"
)

// WINDOW is the default window size, in cells per side.
const WINDOW = 32

// Scanner scans the window whose top left corner is (X, Y).
type Scanner struct {
	Verbose  bool               // If set, logs each scanned row.
	Emulator *emulator.Emulator // Emulator running each coordinate.
	X, Y     int                // Top left coordinate of the window.
	Size     int                // Cells per side. Defaults to WINDOW.
	Workers  int                // Rows scanned in parallel. Defaults to GOMAXPROCS.
}

func (s *Scanner) size() int {
	if s.Size <= 0 {
		return WINDOW
	}
	return s.Size
}

func (s *Scanner) workers() int {
	if s.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return s.Workers
}

// Run scans the window for a single pair. Cancelling ctx stops any rows
// not yet started; a cancelled scan returns the context error.
func (s *Scanner) Run(ctx context.Context, pair emulator.Pair) (grid *Grid, err error) {
	if s.Emulator == nil || s.Emulator.Program == nil {
		err = emulator.ErrProgramMissing
		return
	}

	size := s.size()
	cells := make([]emulator.Cell, size*size)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for dy := range size {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := cells[dy*size : (dy+1)*size]
			for dx := range row {
				cell, err := s.Emulator.Compare(s.X+dx, s.Y+dy, pair)
				if err != nil {
					return err
				}
				row[dx] = cell
			}
			if s.Verbose {
				log.Printf("scan: %v: row %d (y=%d) done", pair, dy, s.Y+dy)
			}
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return
	}

	grid = &Grid{
		Pair:  pair,
		X:     s.X,
		Y:     s.Y,
		Size:  size,
		cells: cells,
	}

	return
}

// RunAll scans the window once per pair, in order.
func (s *Scanner) RunAll(ctx context.Context, pairs []emulator.Pair) (grids []*Grid, err error) {
	for _, pair := range pairs {
		var grid *Grid
		grid, err = s.Run(ctx, pair)
		if err != nil {
			grids = nil
			return
		}
		grids = append(grids, grid)
	}

	return
}
