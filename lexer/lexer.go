// Package lexer scans Brainfuck source text into a sequence of tokens.
//
// Only the eight recognized symbol characters produce tokens. Every other
// byte is inert, which is how comments and prose inside programs are
// supported, but all bytes advance the location tracking so that token
// positions match the original source.
package lexer

import "github.com/cloudcmds/tapevm/token"

// Lexer scans a source buffer one byte at a time, tracking the current
// line and column as it goes. This stage cannot fail: unrecognized bytes
// are skipped rather than rejected.
type Lexer struct {
	src []byte
	pos int
	loc token.Position
}

// New creates a Lexer for the given source text.
func New(src string) *Lexer {
	return FromBytes([]byte(src))
}

// FromBytes creates a Lexer for the given source bytes.
func FromBytes(src []byte) *Lexer {
	return &Lexer{
		src: src,
		loc: token.Position{Line: 1, Column: 0},
	}
}

// Next scans forward to the next recognized symbol and returns its token.
// The second return value is false once the source is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		l.pos++
		l.advance(ch)
		if sym, ok := token.LookupSymbol(ch); ok {
			return token.Token{Symbol: sym, Position: l.loc}, true
		}
	}
	return token.Token{}, false
}

// Tokenize consumes the remaining source and returns all tokens in source
// order.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// The recorded position is the one reached after scanning the current byte:
// a newline moves to the next line at column zero, anything else advances
// the column.
func (l *Lexer) advance(ch byte) {
	if ch == '\n' {
		l.loc.Line++
		l.loc.Column = 0
	} else {
		l.loc.Column++
	}
}

// Tokenize scans the given source text and returns all tokens in source
// order. It is shorthand for creating a Lexer and calling Tokenize on it.
func Tokenize(src string) []token.Token {
	return New(src).Tokenize()
}

// TokenizeBytes is like Tokenize but accepts raw source bytes.
func TokenizeBytes(src []byte) []token.Token {
	return FromBytes(src).Tokenize()
}
