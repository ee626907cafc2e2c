package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/branchscope/config"
	"github.com/ezrec/branchscope/emulator"
)

var scanOpts struct {
	source  string
	x, y    int
	size    int
	ticks   int
	pairs   []string
	json    bool
	workers int
}

// parsePair parses a pair name, or a "set/clear" pair of branch names.
func parsePair(text string) (pair emulator.Pair, err error) {
	setName, clearName, ok := strings.Cut(text, "/")
	if ok {
		return emulator.NewPair(setName, clearName)
	}
	return emulator.LookupPair(text)
}

// scenario loads the scenario file, if any, then applies the flags.
func scenario(cmd *cobra.Command, args []string) (sc *config.Scenario, err error) {
	sc = config.Default()
	if len(args) > 0 {
		sc, err = config.Load(args[0])
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		var data []byte
		data, err = os.ReadFile(scanOpts.source)
		if err != nil {
			return
		}
		sc.Source = string(data)
		sc.SourceFile = scanOpts.source
	}
	if flags.Changed("x") {
		sc.X = scanOpts.x
	}
	if flags.Changed("y") {
		sc.Y = scanOpts.y
	}
	if flags.Changed("size") {
		sc.Size = scanOpts.size
	}
	if flags.Changed("ticks") {
		sc.Ticks = scanOpts.ticks
	}
	if flags.Changed("pair") {
		sc.Pairs = nil
		for _, text := range scanOpts.pairs {
			var pair emulator.Pair
			pair, err = parsePair(text)
			if err != nil {
				return
			}
			sc.Pairs = append(sc.Pairs, pair)
		}
	}

	if len(sc.Source) == 0 {
		err = config.ErrSourceMissing
		return
	}

	err = sc.Validate()
	return
}

var scanCmd = &cobra.Command{
	Use:   "scan [scenario.star]",
	Short: "Compare branch hypotheses over a window of coordinates",
	Long: `Scan runs the program twice per coordinate of a square window, once
for each branch of a flag pair, and reports how the two runs compare.

Outcomes:
  #  incomplete  either run ran out of ticks
  .  no-branch   either run never executed 'branch'
  =  same        both runs agree on whether the branch was taken
  S  set         only the set-flag branch was taken
  c  clear       only the clear-flag branch was taken
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sc, err := scenario(cmd, args)
		if err != nil {
			return
		}

		s, err := sc.Scanner(verbose)
		if err != nil {
			if len(sc.SourceFile) != 0 {
				err = &config.ErrScenario{File: sc.SourceFile, Err: err}
			}
			return
		}
		s.Workers = scanOpts.workers
		s.Emulator.Logger = quietLogger()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		grids, err := s.RunAll(ctx, sc.Pairs)
		if err != nil {
			return
		}

		out := cmd.OutOrStdout()
		if scanOpts.json {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			err = enc.Encode(grids)
			return
		}

		for n, grid := range grids {
			if n > 0 {
				_, err = out.Write([]byte("\n"))
				if err != nil {
					return
				}
			}
			err = grid.WriteText(out)
			if err != nil {
				return
			}
		}

		return
	},
}

func init() {
	flags := scanCmd.Flags()
	flags.StringVarP(&scanOpts.source, "source", "s", "", "Assembly source file (overrides the scenario)")
	flags.IntVar(&scanOpts.x, "x", 0, "Left X coordinate of the window")
	flags.IntVar(&scanOpts.y, "y", 0, "Top Y coordinate of the window")
	flags.IntVar(&scanOpts.size, "size", 0, "Cells per side of the window")
	flags.IntVarP(&scanOpts.ticks, "ticks", "t", 0, "Tick budget per run")
	flags.StringSliceVarP(&scanOpts.pairs, "pair", "p", nil, "Pair to scan: carry, zero, sign, overflow, or set/clear (repeatable)")
	flags.BoolVar(&scanOpts.json, "json", false, "Write JSON instead of text")
	flags.IntVarP(&scanOpts.workers, "workers", "w", 0, "Rows scanned in parallel (default GOMAXPROCS)")

	rootCmd.AddCommand(scanCmd)
}
