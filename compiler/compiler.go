// Package compiler transforms a token sequence into an executable program
// in a single forward pass.
//
// # Run-Length Folding
//
// Every symbol other than the two brackets is groupable: a maximal run of
// identical groupable symbols is folded into one instruction whose operand
// is the run length. This is a pure optimization — n consecutive Add
// instructions are behaviorally equivalent to one Add carrying n. The fold
// is applied uniformly, including to Input, even though at execution time
// an Input instruction consumes exactly one byte regardless of its operand.
//
// # Bracket Matching and Backpatching
//
// Brackets must form a well-nested structure, enforced here and never at
// runtime. A LoopStart token pushes its position and emitted index onto a
// stack and emits a JumpIfZero with a placeholder operand. The matching
// LoopEnd pops the stack, patches the JumpIfZero operand in place to the
// LoopEnd's own index, and emits a JumpIfNonZero whose operand is the
// LoopStart's index. Jump targets are the bracket instructions themselves
// rather than one past them: the virtual machine increments the program
// counter after every dispatch, which moves execution onto the instruction
// following the bracket.
package compiler

import (
	"math"

	"github.com/cloudcmds/tapevm/errors"
	"github.com/cloudcmds/tapevm/op"
	"github.com/cloudcmds/tapevm/token"
)

// Placeholder is a temporary operand written when a LoopStart is emitted,
// which is always replaced before compilation is complete.
const Placeholder = uint(math.MaxUint)

// openBracket records a LoopStart whose matching LoopEnd has not yet been
// seen: the source position of the bracket and the index of the
// JumpIfZero instruction emitted for it.
type openBracket struct {
	position token.Position
	index    int
}

// Compiler consumes a token sequence once, left to right, and emits the
// corresponding program. A Compiler should be used only once.
type Compiler struct {
	// Token sequence being compiled and the read cursor into it.
	tokens []token.Token
	pos    int

	// Stack of currently-open LoopStart tokens, innermost last.
	open []openBracket

	// Instructions emitted so far. Emitted elements are mutated in place
	// when a LoopEnd backpatches its partner, so this must stay
	// index-addressable during compilation.
	emitted []op.Instruction
}

// New creates a Compiler for the given token sequence.
func New(tokens []token.Token) *Compiler {
	return &Compiler{tokens: tokens}
}

// Compile compiles the given token sequence and returns the resulting
// program. On a bracket-matching failure the returned error describes the
// offending source position and no program is returned.
func Compile(tokens []token.Token) (*Program, error) {
	return New(tokens).Compile()
}

// Compile runs the compilation pass and returns the resulting program.
func (c *Compiler) Compile() (*Program, error) {
	for {
		tok, ok := c.next()
		if !ok {
			break
		}
		switch tok.Symbol {
		case token.LoopStart:
			c.open = append(c.open, openBracket{
				position: tok.Position,
				index:    len(c.emitted),
			})
			c.emit(op.JumpIfZero, Placeholder)
		case token.LoopEnd:
			if err := c.closeBracket(tok.Position); err != nil {
				return nil, err
			}
		default:
			c.emit(op.FromSymbol(tok.Symbol), c.countRun(tok.Symbol))
		}
	}
	if len(c.open) > 0 {
		return nil, c.unclosedError()
	}
	return &Program{instructions: c.emitted}, nil
}

// next consumes and returns the next token.
func (c *Compiler) next() (token.Token, bool) {
	if c.pos >= len(c.tokens) {
		return token.Token{}, false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// countRun consumes every immediately-following token with the same
// symbol as the one just read and returns the total run length.
func (c *Compiler) countRun(sym token.Symbol) uint {
	count := uint(1)
	for c.pos < len(c.tokens) && c.tokens[c.pos].Symbol == sym {
		count++
		c.pos++
	}
	return count
}

func (c *Compiler) emit(code op.Code, operand uint) {
	c.emitted = append(c.emitted, op.Instruction{Op: code, Operand: operand})
}

// closeBracket resolves a LoopEnd against the innermost open LoopStart,
// patching the LoopStart's operand to this LoopEnd's index and emitting a
// JumpIfNonZero back to the LoopStart's index.
func (c *Compiler) closeBracket(pos token.Position) error {
	if len(c.open) == 0 {
		return errors.NewCompileError(pos,
			"unexpected closing delimiter ']' at %s", pos)
	}
	start := c.open[len(c.open)-1]
	c.open = c.open[:len(c.open)-1]
	c.emitted[start.index].Operand = uint(len(c.emitted))
	c.emit(op.JumpIfNonZero, uint(start.index))
	return nil
}

// unclosedError reports the innermost still-open bracket and, when more
// than one remains open, the total count of unclosed delimiters.
func (c *Compiler) unclosedError() error {
	innermost := c.open[len(c.open)-1]
	if remaining := len(c.open); remaining > 1 {
		return errors.NewCompileError(innermost.position,
			"unclosed delimiter '[' at %s. There are %d unclosed delimiters.",
			innermost.position, remaining)
	}
	return errors.NewCompileError(innermost.position,
		"unclosed delimiter '[' at %s.", innermost.position)
}
