package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudcmds/tapevm"
	"github.com/cloudcmds/tapevm/vm"
)

// runHandler reads the source file, compiles it and executes the program.
// Program output goes to stdout and program input is read from stdin.
// With --timing, compile and run durations are logged to stderr.
func runHandler(cmd *cobra.Command, args []string) error {
	logger := timingLogger(viper.GetBool("timing"))

	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	program, err := tapevm.Compile(string(src))
	if err != nil {
		return err
	}
	logger.Info().
		Dur("elapsed", time.Since(start)).
		Int("instructions", program.Len()).
		Msg("program compiled")

	opts := []vm.Option{
		vm.WithInput(cmd.InOrStdin()),
		vm.WithOutput(cmd.OutOrStdout()),
	}
	if size := viper.GetInt("tape-size"); size > 0 {
		opts = append(opts, vm.WithTapeSize(size))
	}
	machine, err := vm.New(program, opts...)
	if err != nil {
		return err
	}

	start = time.Now()
	if err := machine.Run(context.Background()); err != nil {
		return err
	}
	logger.Info().
		Dur("elapsed", time.Since(start)).
		Msg("program executed")
	return nil
}

// timingLogger returns a console logger on stderr, or a no-op logger when
// timing output is disabled.
func timingLogger(enabled bool) zerolog.Logger {
	if !enabled {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
}
