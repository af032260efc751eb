package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tjbuckner/golox/lang/scanner"
	"github.com/tjbuckner/golox/lang/token"
)

func kinds(toks []scanner.Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, err := scanner.Scan("test.lox", []byte("(){},.-+;*!= == <= >= < >"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQ, token.EQ_EQ, token.LT_EQ, token.GT_EQ, token.LT, token.GT,
		token.EOF,
	}, kinds(toks))
}

func TestScanNumbers(t *testing.T) {
	toks, err := scanner.Scan("test.lox", []byte("123 45.67"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, token.NUMBER, toks[0].Kind)
	require.Equal(t, float64(123), toks[0].Literal)
	require.Equal(t, token.NUMBER, toks[1].Kind)
	require.Equal(t, 45.67, toks[1].Literal)
}

func TestScanStrings(t *testing.T) {
	toks, err := scanner.Scan("test.lox", []byte(`"hello world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Literal)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.Scan("test.lox", []byte(`"hello`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unterminated string.")
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, err := scanner.Scan("test.lox", []byte("var x = foo and bar"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{
		token.VAR, token.IDENT, token.EQ, token.IDENT, token.AND, token.IDENT, token.EOF,
	}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, err := scanner.Scan("test.lox", []byte("1 // a comment\n2"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, token.Pos(1), toks[0].Line)
	require.Equal(t, token.Pos(2), toks[1].Line)
}

func TestScanIllegalCharacter(t *testing.T) {
	_, err := scanner.Scan("test.lox", []byte("@"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unexpected character.")
}
