package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a program and print its listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		prog, err := assembleFile(args[0])
		if err != nil {
			err = fmt.Errorf("%v: %w", args[0], err)
			return
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), prog.Listing())
		return
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
}
