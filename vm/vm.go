// Package vm provides a VirtualMachine that executes compiled tapevm
// programs against a fixed-length byte tape.
package vm

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/cloudcmds/tapevm/compiler"
	"github.com/cloudcmds/tapevm/errors"
	"github.com/cloudcmds/tapevm/op"
)

const (
	// DefaultTapeSize is the number of byte cells allocated when no
	// tape-size option is provided.
	DefaultTapeSize = 30_000

	// MaxCellOperand bounds Add and Sub operands: any such operand must
	// be strictly less than this value at construction time. Execution
	// arithmetic wraps modulo 256 regardless, so a source run of 255 or
	// more identical '+' or '-' symbols is rejected even though it would
	// wrap correctly. This threshold is preserved deliberately.
	MaxCellOperand = 255
)

// VirtualMachine executes a compiled program. It exclusively owns its
// program, tape and cursor for its entire lifetime, and at most one run
// is ever in flight for a given instance.
type VirtualMachine struct {
	program  *compiler.Program
	pc       int // program counter
	tapeSize int
	tape     []byte
	cursor   int // index of the currently active cell
	input    io.Reader
	output   io.Writer
	started  bool
}

// New creates a VirtualMachine for the given program and validates it:
// every Add and Sub operand must be below MaxCellOperand, else
// construction fails and no execution is attempted. All violations are
// reported, not just the first. The tape is allocated zero-filled.
func New(program *compiler.Program, options ...Option) (*VirtualMachine, error) {
	vm := &VirtualMachine{
		program:  program,
		tapeSize: DefaultTapeSize,
		input:    os.Stdin,
		output:   os.Stdout,
	}
	for _, opt := range options {
		if err := opt(vm); err != nil {
			return nil, err
		}
	}
	if err := validate(program); err != nil {
		return nil, err
	}
	vm.tape = make([]byte, vm.tapeSize)
	return vm, nil
}

// validate rejects any program containing an Add or Sub instruction whose
// operand is at or above MaxCellOperand.
func validate(p *compiler.Program) error {
	var result *multierror.Error
	for i := 0; i < p.Len(); i++ {
		instr := p.Instruction(i)
		switch instr.Op {
		case op.Add, op.Sub:
			if instr.Operand >= MaxCellOperand {
				result = multierror.Append(result, errors.NewRuntimeError(
					"instruction %d: %s operand out of range: %d (must be below %d)",
					i, instr.Op, instr.Operand, MaxCellOperand))
			}
		}
	}
	return result.ErrorOrNil()
}

// TapeSize returns the number of cells on this machine's tape.
func (vm *VirtualMachine) TapeSize() int {
	return len(vm.tape)
}

// Run executes the program to completion. Output is flushed before every
// input read and when the run ends, so interleaved prompts appear before
// the reads they precede. A VirtualMachine runs at most once; a second
// call to Run is an error. Cancellation is checked only before execution
// begins: once a run starts it proceeds to completion, error, or an
// indefinite block on input.
func (vm *VirtualMachine) Run(ctx context.Context) error {
	if vm.started {
		return fmt.Errorf("vm has already run")
	}
	vm.started = true
	if err := ctx.Err(); err != nil {
		return err
	}
	out := bufio.NewWriter(vm.output)
	err := vm.run(out)
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = errors.NewRuntimeError("output write failed: %v", flushErr)
	}
	return err
}

func (vm *VirtualMachine) run(out *bufio.Writer) error {
	size := len(vm.tape)
	count := vm.program.Len()
	for vm.pc >= 0 && vm.pc < count {
		instr := vm.program.Instruction(vm.pc)
		switch instr.Op {
		case op.Add:
			vm.tape[vm.cursor] += byte(instr.Operand)
		case op.Sub:
			vm.tape[vm.cursor] -= byte(instr.Operand)
		case op.ShiftLeft:
			// Saturates at zero; this opcode never errors.
			if instr.Operand >= uint(vm.cursor) {
				vm.cursor = 0
			} else {
				vm.cursor -= int(instr.Operand)
			}
		case op.ShiftRight:
			vm.cursor += int(instr.Operand)
			if vm.cursor >= size {
				return errors.NewRuntimeError(
					"tape overflowed: %d cells => %d cells", size, vm.cursor-size)
			}
		case op.JumpIfZero:
			// Land on the matching JumpIfNonZero; the pc increment below
			// moves execution past it.
			if vm.tape[vm.cursor] == 0 {
				vm.pc = int(instr.Operand)
			}
		case op.JumpIfNonZero:
			if vm.tape[vm.cursor] != 0 {
				vm.pc = int(instr.Operand)
			}
		case op.Output:
			cell := vm.tape[vm.cursor]
			var chunk []byte
			if instr.Operand == 1 {
				chunk = []byte{cell}
			} else {
				chunk = bytes.Repeat([]byte{cell}, int(instr.Operand))
			}
			if _, err := out.Write(chunk); err != nil {
				return errors.NewRuntimeError("output write failed: %v", err)
			}
		case op.Input:
			// A folded run of input symbols still consumes exactly one
			// byte; the operand does not drive repetition.
			if err := out.Flush(); err != nil {
				return errors.NewRuntimeError("output write failed: %v", err)
			}
			if _, err := io.ReadFull(vm.input, vm.tape[vm.cursor:vm.cursor+1]); err != nil {
				return errors.NewRuntimeError("input read failed: %v", err)
			}
		default:
			return errors.NewRuntimeError("unknown opcode: %d", instr.Op)
		}
		vm.pc++
	}
	return nil
}
