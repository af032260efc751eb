package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosIsValid(t *testing.T) {
	require.False(t, Pos(0).IsValid())
	require.True(t, Pos(1).IsValid())
	require.True(t, Pos(42).IsValid())
}

func TestPosPosition(t *testing.T) {
	p := Pos(7)
	got := p.Position("script.lox")
	require.Equal(t, "script.lox", got.Filename)
	require.Equal(t, 7, got.Line)
}

func TestFormatErrorList(t *testing.T) {
	var el ErrorList
	el.Add(Pos(3).Position("script.lox"), " at 'x': Expect ';' after value.")
	got := FormatErrorList(el)
	require.Equal(t, "[line 3] Error at 'x': Expect ';' after value.", got)
}

func TestFormatErrorListMultiple(t *testing.T) {
	var el ErrorList
	el.Add(Pos(1).Position("script.lox"), ": Unexpected character.")
	el.Add(Pos(2).Position("script.lox"), " at end: Expect expression.")
	got := FormatErrorList(el)
	require.Equal(t, "[line 1] Error: Unexpected character.\n[line 2] Error at end: Expect expression.", got)
}
