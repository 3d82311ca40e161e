// Package token defines the eight Brainfuck symbols and the tokens produced
// when lexing source code.
package token

import "fmt"

// Symbol identifies one of the eight recognized source characters.
type Symbol byte

const (
	Plus      Symbol = '+'
	Minus     Symbol = '-'
	Less      Symbol = '<'
	Greater   Symbol = '>'
	LoopStart Symbol = '['
	LoopEnd   Symbol = ']'
	Input     Symbol = ','
	Output    Symbol = '.'
)

// LookupSymbol returns the Symbol corresponding to the given source byte.
// The second return value is false for any byte that is not one of the
// eight recognized characters.
func LookupSymbol(ch byte) (Symbol, bool) {
	switch Symbol(ch) {
	case Plus, Minus, Less, Greater, LoopStart, LoopEnd, Input, Output:
		return Symbol(ch), true
	}
	return 0, false
}

// IsLoop returns true for the two bracket symbols.
func (s Symbol) IsLoop() bool {
	return s == LoopStart || s == LoopEnd
}

// IsGroupable returns true for symbols that may be folded into a single
// counted instruction. Everything other than the brackets is groupable.
func (s Symbol) IsGroupable() bool {
	return !s.IsLoop()
}

// String returns the source character for this symbol.
func (s Symbol) String() string {
	return string(byte(s))
}

// Position points to a particular location in an input string. Lines are
// counted from 1 and columns from 0. A newline advances the line and resets
// the column; any other scanned byte advances the column.
type Position struct {
	Line   int
	Column int
}

// String returns the position in "line:column" form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one symbol lexed from the input source code, together with the
// position at which it was scanned.
type Token struct {
	Symbol   Symbol
	Position Position
}
