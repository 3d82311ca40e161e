package compiler

import "github.com/cloudcmds/tapevm/op"

// Program is an ordered, index-addressable sequence of instructions,
// immutable after compilation. A Program is created once by the compiler
// and owned by the virtual machine that executes it.
type Program struct {
	instructions []op.Instruction
}

// NewProgram creates a Program directly from a sequence of instructions.
// The instructions are copied, so the caller's slice may be reused. Most
// callers should obtain programs from Compile instead; programs built
// here are still subject to validation by the virtual machine.
func NewProgram(instructions []op.Instruction) *Program {
	copied := make([]op.Instruction, len(instructions))
	copy(copied, instructions)
	return &Program{instructions: copied}
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.instructions)
}

// Instruction returns the instruction at the given index.
func (p *Program) Instruction(index int) op.Instruction {
	return p.instructions[index]
}

// Instructions returns a copy of the program's instruction sequence.
func (p *Program) Instructions() []op.Instruction {
	copied := make([]op.Instruction, len(p.instructions))
	copy(copied, p.instructions)
	return copied
}
