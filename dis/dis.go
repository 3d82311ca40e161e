// Package dis supports analysis of compiled tapevm programs by
// disassembling them into a human-readable instruction listing.
package dis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/cloudcmds/tapevm/compiler"
	"github.com/cloudcmds/tapevm/op"
)

// Instruction represents a single disassembled instruction.
type Instruction struct {
	Offset     int
	Name       string
	Opcode     op.Code
	Operand    uint
	Annotation string
}

// Disassemble returns a parsed representation of the given program. Jump
// instructions are annotated with the opcode of the bracket partner their
// operand points at; other instructions are annotated with the source
// symbol they fold.
func Disassemble(program *compiler.Program) []Instruction {
	instructions := make([]Instruction, 0, program.Len())
	for i := 0; i < program.Len(); i++ {
		instr := program.Instruction(i)
		info := op.GetInfo(instr.Op)
		var annotation string
		if instr.Op.IsJump() {
			target := int(instr.Operand)
			if target >= 0 && target < program.Len() {
				annotation = fmt.Sprintf("-> %s @ %d",
					op.GetInfo(program.Instruction(target).Op).Name, target)
			}
		} else {
			annotation = fmt.Sprintf("'%s' x %d", info.Symbol, instr.Operand)
		}
		instructions = append(instructions, Instruction{
			Offset:     i,
			Name:       info.Name,
			Opcode:     instr.Op,
			Operand:    instr.Operand,
			Annotation: annotation,
		})
	}
	return instructions
}

var (
	boldText   = color.New(color.Bold)
	yellowText = color.New(color.FgYellow)
	italicText = color.New(color.Italic)
)

// Print writes a string representation of the given instructions to the
// given writer.
func Print(instructions []Instruction, writer io.Writer) {
	tw := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	for _, instr := range instructions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			instr.Offset,
			boldText.Sprint(instr.Name),
			yellowText.Sprintf("%d", instr.Operand),
			italicText.Sprint(instr.Annotation))
	}
	tw.Flush()
}
