package vm

import (
	"fmt"
	"io"
)

// Option is a configuration function for a VirtualMachine.
type Option func(*VirtualMachine) error

// WithTapeSize sets the number of byte cells on the tape. The default is
// DefaultTapeSize. The size must be positive.
func WithTapeSize(size int) Option {
	return func(vm *VirtualMachine) error {
		if size <= 0 {
			return fmt.Errorf("tape size must be positive, got %d", size)
		}
		vm.tapeSize = size
		return nil
	}
}

// WithInput sets the input source read by Input instructions. The default
// is the process's standard input.
func WithInput(r io.Reader) Option {
	return func(vm *VirtualMachine) error {
		vm.input = r
		return nil
	}
}

// WithOutput sets the output sink written by Output instructions. The
// default is the process's standard output.
func WithOutput(w io.Writer) Option {
	return func(vm *VirtualMachine) error {
		vm.output = w
		return nil
	}
}
