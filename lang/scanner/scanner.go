// Package scanner tokenizes Lox source text for the parser to consume.
//
// The one-rune-lookahead scanning loop (advance/peek) and the pattern of
// accumulating diagnostics in a token.ErrorList are adapted from the
// teacher's scanner; the lexical grammar itself (no hex/octal numbers, no
// digit separators, no long bracketed strings, no string escapes) is Lox's.
package scanner

import (
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/tjbuckner/golox/lang/token"
)

type (
	Error     = token.Error
	ErrorList = token.ErrorList
)

// Token pairs a lexical token kind with its lexeme, source line, and (for
// NUMBER and STRING tokens) the decoded literal value.
type Token struct {
	Kind    token.Token
	Lexeme  string
	Line    token.Pos
	Literal interface{} // float64 for NUMBER, string for STRING, nil otherwise
}

// ScanFile reads filename and tokenizes its contents.
func ScanFile(filename string) ([]Token, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Scan(filename, src)
}

// Scan tokenizes src, attributing any accumulated errors to filename. The
// returned error is nil if scanning completed without any illegal
// characters or unterminated strings; it is otherwise a token.ErrorList.
func Scan(filename string, src []byte) ([]Token, error) {
	var el ErrorList
	s := &Scanner{
		src:  src,
		line: 1,
		err: func(line token.Pos, msg string) {
			el.Add(line.Position(filename), ": "+msg)
		},
	}
	s.advance() // prime cur with the first character

	var toks []Token
	for {
		tok := s.scanToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	el.Sort()
	return toks, el.Err()
}

// Scanner tokenizes a single source buffer one token at a time.
type Scanner struct {
	src []byte
	err func(line token.Pos, msg string)

	start int       // byte offset where the current token begins
	off   int       // byte offset of cur
	roff  int       // byte offset just past cur
	cur   rune      // current character, -1 at EOF
	line  token.Pos // current line, incremented on '\n'
}

// peek returns the byte following cur without advancing, or 0 at EOF.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// peekNext returns the byte two positions ahead of cur, or 0 past EOF.
func (s *Scanner) peekNext() byte {
	if s.roff+1 < len(s.src) {
		return s.src[s.roff+1]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}
	if s.cur == '\n' {
		s.line++
	}
	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
	}
	s.roff += w
	s.cur = r
}

// advanceIf advances and returns true only if cur equals want.
func (s *Scanner) advanceIf(want rune) bool {
	if s.cur == want {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) scanToken() Token {
	s.skipWhitespaceAndComments()

	s.start = s.off
	line := s.line

	switch cur := s.cur; {
	case cur == -1:
		return Token{Kind: token.EOF, Line: line}

	case isDigit(cur):
		return s.number(line)

	case isAlpha(cur):
		return s.identifier(line)

	case cur == '"':
		return s.string(line)

	default:
		s.advance()
		switch cur {
		case '(':
			return s.simple(token.LPAREN, line)
		case ')':
			return s.simple(token.RPAREN, line)
		case '{':
			return s.simple(token.LBRACE, line)
		case '}':
			return s.simple(token.RBRACE, line)
		case ',':
			return s.simple(token.COMMA, line)
		case '.':
			return s.simple(token.DOT, line)
		case '-':
			return s.simple(token.MINUS, line)
		case '+':
			return s.simple(token.PLUS, line)
		case ';':
			return s.simple(token.SEMICOLON, line)
		case '*':
			return s.simple(token.STAR, line)
		case '/':
			return s.simple(token.SLASH, line)
		case '!':
			if s.advanceIf('=') {
				return s.simple(token.BANG_EQ, line)
			}
			return s.simple(token.BANG, line)
		case '=':
			if s.advanceIf('=') {
				return s.simple(token.EQ_EQ, line)
			}
			return s.simple(token.EQ, line)
		case '<':
			if s.advanceIf('=') {
				return s.simple(token.LT_EQ, line)
			}
			return s.simple(token.LT, line)
		case '>':
			if s.advanceIf('=') {
				return s.simple(token.GT_EQ, line)
			}
			return s.simple(token.GT, line)
		default:
			if s.err != nil {
				s.err(line, "Unexpected character.")
			}
			return Token{Kind: token.ILLEGAL, Lexeme: string(cur), Line: line}
		}
	}
}

func (s *Scanner) simple(tok token.Token, line token.Pos) Token {
	return Token{Kind: tok, Lexeme: string(s.src[s.start:s.off]), Line: line}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch s.cur {
		case ' ', '\t', '\r', '\n':
			s.advance()
		case '/':
			if s.peek() != '/' {
				return
			}
			for s.cur != '\n' && s.cur != -1 {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) string(line token.Pos) Token {
	s.advance() // opening quote
	for s.cur != '"' && s.cur != -1 {
		s.advance()
	}
	if s.cur == -1 {
		if s.err != nil {
			s.err(line, "Unterminated string.")
		}
		return Token{Kind: token.ILLEGAL, Lexeme: string(s.src[s.start:s.off]), Line: line}
	}
	s.advance() // closing quote

	raw := string(s.src[s.start:s.off])
	value := raw[1 : len(raw)-1]
	return Token{Kind: token.STRING, Lexeme: raw, Line: line, Literal: value}
}

func (s *Scanner) number(line token.Pos) Token {
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(rune(s.peek())) {
		s.advance() // consume the '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}

	raw := string(s.src[s.start:s.off])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && s.err != nil {
		s.err(line, "Invalid number literal.")
	}
	return Token{Kind: token.NUMBER, Lexeme: raw, Line: line, Literal: v}
}

func (s *Scanner) identifier(line token.Pos) Token {
	for isAlpha(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	lit := string(s.src[s.start:s.off])
	return Token{Kind: token.LookupKw(lit), Lexeme: lit, Line: line}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool {
	return r == '_' ||
		'a' <= r && r <= 'z' ||
		'A' <= r && r <= 'Z'
}
