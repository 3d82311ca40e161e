// Package op defines opcodes used by the tapevm compiler and virtual machine.
package op

import "github.com/cloudcmds/tapevm/token"

// Code is an integer opcode that indicates an operation to execute.
type Code uint16

const (
	Invalid Code = 0

	// Cell arithmetic
	Add Code = 1
	Sub Code = 2

	// Cursor movement
	ShiftLeft  Code = 3
	ShiftRight Code = 4

	// Control flow
	JumpIfZero    Code = 5
	JumpIfNonZero Code = 6

	// I/O
	Input  Code = 7
	Output Code = 8
)

// Instruction pairs an opcode with its single unsigned operand. For Add,
// Sub, ShiftLeft, ShiftRight, Input and Output the operand is a repeat
// count produced by run-length folding. For JumpIfZero and JumpIfNonZero
// it is the absolute program index of the matching bracket instruction.
type Instruction struct {
	Op      Code
	Operand uint
}

// FromSymbol returns the opcode corresponding to a source symbol.
func FromSymbol(sym token.Symbol) Code {
	switch sym {
	case token.Plus:
		return Add
	case token.Minus:
		return Sub
	case token.Less:
		return ShiftLeft
	case token.Greater:
		return ShiftRight
	case token.LoopStart:
		return JumpIfZero
	case token.LoopEnd:
		return JumpIfNonZero
	case token.Input:
		return Input
	case token.Output:
		return Output
	}
	return Invalid
}

// IsJump returns true for the two branch opcodes.
func (c Code) IsJump() bool {
	return c == JumpIfZero || c == JumpIfNonZero
}

// Info contains information about an opcode.
type Info struct {
	Code   Code
	Name   string
	Symbol token.Symbol
}

var infos = make([]Info, 16)

func init() {
	ops := []Info{
		{Add, "ADD", token.Plus},
		{Sub, "SUB", token.Minus},
		{ShiftLeft, "SHIFT_LEFT", token.Less},
		{ShiftRight, "SHIFT_RIGHT", token.Greater},
		{JumpIfZero, "JUMP_IF_ZERO", token.LoopStart},
		{JumpIfNonZero, "JUMP_IF_NON_ZERO", token.LoopEnd},
		{Input, "INPUT", token.Input},
		{Output, "OUTPUT", token.Output},
	}
	for _, o := range ops {
		infos[o.Code] = o
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(c Code) Info {
	if int(c) >= len(infos) {
		return Info{Code: c, Name: "UNKNOWN"}
	}
	info := infos[c]
	if info.Name == "" {
		return Info{Code: c, Name: "UNKNOWN"}
	}
	return info
}

// String returns the opcode's disassembly name.
func (c Code) String() string {
	return GetInfo(c).Name
}
