// Package tapevm compiles and executes Brainfuck programs: a minimal
// eight-symbol language operating on a fixed-length tape of byte cells.
//
// The pipeline has three stages. The lexer scans source bytes into tokens
// with line and column positions, ignoring anything that is not one of the
// eight symbol characters. The compiler folds repeated symbols into
// counted instructions and resolves bracket pairs into absolute jump
// targets. The virtual machine validates the program, then executes it
// against a zero-filled tape, reading one byte from the input source per
// Input instruction and writing raw bytes to the output sink per Output
// instruction.
//
// Running a program is a one-liner:
//
//	err := tapevm.Run(ctx, source)
//
// Use options to redirect I/O or change the tape size:
//
//	err := tapevm.Run(ctx, source,
//		tapevm.WithTapeSize(65536),
//		tapevm.WithOutput(&buf))
package tapevm

import (
	"context"
	"io"

	"github.com/cloudcmds/tapevm/compiler"
	"github.com/cloudcmds/tapevm/lexer"
	"github.com/cloudcmds/tapevm/vm"
)

// Option configures a tapevm execution.
type Option func(*options)

type options struct {
	tapeSize int
	input    io.Reader
	output   io.Writer
}

// WithTapeSize sets the number of byte cells on the tape. The default is
// vm.DefaultTapeSize.
func WithTapeSize(size int) Option {
	return func(o *options) {
		o.tapeSize = size
	}
}

// WithInput sets the input source read by Input instructions.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput sets the output sink written by Output instructions.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.tapeSize > 0 {
		opts = append(opts, vm.WithTapeSize(o.tapeSize))
	}
	if o.input != nil {
		opts = append(opts, vm.WithInput(o.input))
	}
	if o.output != nil {
		opts = append(opts, vm.WithOutput(o.output))
	}
	return opts
}

// Compile tokenizes and compiles the given source, returning the program.
func Compile(source string) (*compiler.Program, error) {
	return compiler.Compile(lexer.Tokenize(source))
}

// Run compiles the given source and executes the resulting program to
// completion. It is shorthand for calling Compile, vm.New and
// VirtualMachine.Run in sequence.
func Run(ctx context.Context, source string, opts ...Option) error {
	program, err := Compile(source)
	if err != nil {
		return err
	}
	machine, err := vm.New(program, collectOptions(opts...).vmOpts()...)
	if err != nil {
		return err
	}
	return machine.Run(ctx)
}
