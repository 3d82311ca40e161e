// Command tapevm compiles and runs Brainfuck programs.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "tapevm <file>",
	Short:         "Compile and run Brainfuck programs on a byte-tape virtual machine",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no-color") {
			color.NoColor = true
		}
	},
	RunE: runHandler,
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.Flags().Int("tape-size", 0, "Number of tape cells (default 30000)")
	rootCmd.Flags().Bool("timing", false, "Log compile and run timing to stderr")

	viper.SetEnvPrefix("tapevm")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("tape-size", rootCmd.Flags().Lookup("tape-size"))
	viper.BindPFlag("timing", rootCmd.Flags().Lookup("timing"))

	rootCmd.AddCommand(disCmd)
	rootCmd.AddCommand(versionCmd)
}

// fatal prints the error in the standard "error: <message>" form and
// terminates with a non-zero status.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
