package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/branchscope/cpu"
	"github.com/ezrec/branchscope/emulator"
)

var runOpts struct {
	x, y       int
	branch     string
	ticks      int
	xVar, yVar string
}

var runCmd = &cobra.Command{
	Use:   "run sourceFile",
	Short: "Run a program once, and print the CPU state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		branch, err := cpu.ParseBranch(runOpts.branch)
		if err != nil {
			return
		}

		prog, err := assembleFile(args[0])
		if err != nil {
			err = fmt.Errorf("%v: %w", args[0], err)
			return
		}

		c := cpu.NewCpu(prog)
		c.Verbose = verbose
		err = c.Vars.SetBranchType(branch)
		if err != nil {
			return
		}
		c.Vars.Set(cpu.Var(runOpts.xVar), runOpts.x)
		c.Vars.Set(cpu.Var(runOpts.yVar), runOpts.y)

		done := c.Run(runOpts.ticks)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "   done: %v\n", done)
		fmt.Fprintf(out, "  ticks: %d\n", c.Ticks)
		fmt.Fprintf(out, " branch: %v", branch)
		if hit, ok := c.Vars.BranchHit(); ok {
			fmt.Fprintf(out, " (taken: %v)\n", hit)
		} else {
			fmt.Fprintf(out, " (not executed)\n")
		}
		_, err = fmt.Fprint(out, c.String())
		return
	},
}

func init() {
	flags := runCmd.Flags()
	flags.IntVar(&runOpts.x, "x", 0, "Initial X coordinate")
	flags.IntVar(&runOpts.y, "y", 0, "Initial Y coordinate")
	flags.StringVarP(&runOpts.branch, "branch", "b", cpu.MN_BCC.String(), "Conditional branch performed by 'branch'")
	flags.IntVarP(&runOpts.ticks, "ticks", "t", cpu.TICK_BUDGET, "Tick budget")
	flags.StringVar(&runOpts.xVar, "x-var", emulator.X_VAR, "X coordinate variable")
	flags.StringVar(&runOpts.yVar, "y-var", emulator.Y_VAR, "Y coordinate variable")

	rootCmd.AddCommand(runCmd)
}
