// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/branchscope/cpu"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "branchscope",
	Short: "Assemble and scan 6502-style branch logic",
	Long: `Branchscope assembles a small 6502-style program and runs it on a
byte-precise virtual CPU. Its 'branch' instruction performs whichever
conditional branch the caller selects, so the same program can be run
under both hypotheses of a flag and the results compared over a grid of
input coordinates.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// assembleFile assembles a source file, or stdin for "-".
func assembleFile(filename string) (prog *cpu.Program, err error) {
	var inf io.Reader = os.Stdin
	if filename != "-" {
		var file *os.File
		file, err = os.Open(filename)
		if err != nil {
			return
		}
		defer file.Close()
		inf = file
	}

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err = asm.Parse(inf)
	return
}

// quietLogger discards tick exhaustion reports, unless verbose.
func quietLogger() *log.Logger {
	if verbose {
		return log.Default()
	}
	return log.New(io.Discard, "", 0)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("%v: %v", rootCmd.Name(), err)
	}
}
