package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		require.NotEmpty(t, tok.String(), "token %d missing a string representation", tok)
	}
}

func TestTokenGoString(t *testing.T) {
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "'+'", PLUS.GoString())
	require.Equal(t, "'and'", AND.GoString())
}

func TestLookupKw(t *testing.T) {
	cases := []struct {
		lit  string
		want Token
	}{
		{"and", AND},
		{"class", CLASS},
		{"while", WHILE},
		{"print", PRINT},
		{"foo", IDENT},
		{"", IDENT},
	}
	for _, c := range cases {
		require.Equal(t, c.want, LookupKw(c.lit))
	}
}

func TestLiteral(t *testing.T) {
	require.Equal(t, "foo", IDENT.Literal("foo"))
	require.Equal(t, "123", NUMBER.Literal("123"))
	require.Equal(t, `"hi"`, STRING.Literal(`"hi"`))
	require.Equal(t, "", PLUS.Literal("+"))
}
