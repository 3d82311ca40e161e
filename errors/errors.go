// Package errors defines the error types reported by the tapevm compiler
// and virtual machine. There are exactly two failure phases: compile time
// and run time. Both are fail-fast, carry a human-readable message with
// positional or size context, and propagate directly to the caller.
package errors

import (
	"fmt"

	"github.com/cloudcmds/tapevm/token"
)

// CompileError represents a bracket-matching failure detected while
// compiling a token sequence. Compilation halts with no partial program.
type CompileError struct {
	Message  string
	Position token.Position
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return e.Message
}

// NewCompileError creates a CompileError at the given source position.
func NewCompileError(pos token.Position, format string, args ...interface{}) *CompileError {
	return &CompileError{
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}

// RuntimeError represents a failure during program validation or
// execution: an out-of-range instruction operand, a tape overflow, or a
// failed read from the input source.
type RuntimeError struct {
	Message string
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError creates a RuntimeError with the given message.
func NewRuntimeError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}
