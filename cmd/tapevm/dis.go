package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudcmds/tapevm"
	"github.com/cloudcmds/tapevm/dis"
)

var disCmd = &cobra.Command{
	Use:   "dis <file>",
	Short: "Disassemble a compiled program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		program, err := tapevm.Compile(string(src))
		if err != nil {
			return err
		}
		dis.Print(dis.Disassemble(program), cmd.OutOrStdout())
		return nil
	},
}
