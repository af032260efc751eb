// Package parser implements a recursive-descent parser that turns a token
// stream into an *ast.Chunk.
//
// Error recovery reuses the teacher's panic(errPanicMode)/recover technique:
// a failed p.expect panics, parseDeclaration recovers at the statement
// boundary, synchronizes to the next likely statement start, and continues
// parsing so that a single mistake doesn't stop the whole file from being
// checked for further errors.
package parser

import (
	"errors"

	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/scanner"
	"github.com/tjbuckner/golox/lang/token"
)

// ParseFile reads filename and parses it into a Chunk. A scan or parse
// failure is returned as a token.ErrorList; a read failure is returned as
// the error os.ReadFile reported.
func ParseFile(filename string) (*ast.Chunk, error) {
	toks, err := scanner.ScanFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(filename, toks)
}

// Parse parses a token stream already produced by the scanner into a Chunk.
// filename is used to attribute parse errors and as the Chunk's Name. The
// returned error, if non-nil, is a token.ErrorList.
func Parse(filename string, toks []scanner.Token) (*ast.Chunk, error) {
	var p parser
	p.filename = filename
	p.toks = toks
	p.advance()

	chunk := p.parseChunk()
	p.errors.Sort()
	return chunk, p.errors.Err()
}

var errPanicMode = errors.New("parser: panic mode")

// parser holds the mutable state of a single parse.
type parser struct {
	filename string
	toks     []scanner.Token
	pos      int // index into toks of the current token
	errors   token.ErrorList

	cur scanner.Token // toks[pos], cached for convenience
}

func (p *parser) advance() {
	p.cur = p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

func (p *parser) check(kind token.Token) bool { return p.cur.Kind == kind }

// match advances and returns true if the current token is kind.
func (p *parser) match(kinds ...token.Token) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has kind tok, otherwise it records
// a diagnostic and panics with errPanicMode, unwound by the nearest
// recover() at a statement boundary.
func (p *parser) expect(tok token.Token) scanner.Token {
	if p.check(tok) {
		cur := p.cur
		p.advance()
		return cur
	}
	p.errorExpected(tok.GoString())
	panic(errPanicMode)
}

func (p *parser) error(line token.Pos, msg string) {
	p.errors.Add(line.Position(p.filename), msg)
}

// errorExpected renders a diagnostic in the style ` at 'foo': Expect ...`
// or ` at end: Expect ...`, matching this language's one-line error format.
func (p *parser) errorExpected(what string) {
	var where string
	if p.cur.Kind == token.EOF {
		where = " at end"
	} else {
		where = " at '" + p.cur.Lexeme + "'"
	}
	p.error(p.cur.Line, where+": Expect "+what+".")
}

// errorAtCurrent records a diagnostic at the current token without the
// "Expect ..." framing, for semantic (as opposed to grammar) errors.
func (p *parser) errorAtCurrent(msg string) {
	var where string
	if p.cur.Kind == token.EOF {
		where = " at end"
	} else {
		where = " at '" + p.cur.Lexeme + "'"
	}
	p.error(p.cur.Line, where+": "+msg)
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so that one parse error doesn't cascade into dozens of spurious ones.
func (p *parser) synchronize() {
	for !p.check(token.EOF) {
		if p.cur.Kind == token.SEMICOLON {
			p.advance()
			return
		}
		switch p.cur.Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
