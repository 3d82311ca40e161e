package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupSymbol(t *testing.T) {
	tests := []struct {
		ch     byte
		symbol Symbol
		ok     bool
	}{
		{'+', Plus, true},
		{'-', Minus, true},
		{'<', Less, true},
		{'>', Greater, true},
		{'[', LoopStart, true},
		{']', LoopEnd, true},
		{',', Input, true},
		{'.', Output, true},
		{'a', 0, false},
		{' ', 0, false},
		{'\n', 0, false},
		{'!', 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		sym, ok := LookupSymbol(tt.ch)
		require.Equal(t, tt.ok, ok, "byte %q", tt.ch)
		require.Equal(t, tt.symbol, sym, "byte %q", tt.ch)
	}
}

func TestIsGroupable(t *testing.T) {
	require.False(t, LoopStart.IsGroupable())
	require.False(t, LoopEnd.IsGroupable())
	require.True(t, LoopStart.IsLoop())
	require.True(t, LoopEnd.IsLoop())
	for _, sym := range []Symbol{Plus, Minus, Less, Greater, Input, Output} {
		require.True(t, sym.IsGroupable(), "symbol %s", sym)
		require.False(t, sym.IsLoop(), "symbol %s", sym)
	}
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "1:0", Position{Line: 1}.String())
	require.Equal(t, "12:34", Position{Line: 12, Column: 34}.String())
}

func TestSymbolString(t *testing.T) {
	require.Equal(t, "+", Plus.String())
	require.Equal(t, "]", LoopEnd.String())
}
