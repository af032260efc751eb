package parser

import (
	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/token"
)

// parseExpr parses the lowest-precedence production: assignment.
func (p *parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment handles `target = value`, right-associative, falling back
// to parseOr for every expression that isn't followed by '='. Since we don't
// know in advance whether an expression being parsed is an assignment
// target, the left-hand side is always parsed as a normal expression first
// and then checked by the type switch below once we see the '=': only a
// Variable or a Get is a valid target.
func (p *parser) parseAssignment() ast.Expr {
	expr := p.parseOr()

	if p.check(token.EQ) {
		eq := p.cur
		p.advance()
		value := p.parseAssignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Start: target.Start, Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Dot: target.Dot, Name: target.Name, Value: value}
		default:
			p.error(eq.Line, ": Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *parser) parseOr() ast.Expr {
	expr := p.parseAnd()
	for p.check(token.OR) {
		op := p.cur
		p.advance()
		right := p.parseAnd()
		expr = &ast.Logical{Left: expr, Op: op.Kind, OpPos: op.Line, Right: right}
	}
	return expr
}

func (p *parser) parseAnd() ast.Expr {
	expr := p.parseEquality()
	for p.check(token.AND) {
		op := p.cur
		p.advance()
		right := p.parseEquality()
		expr = &ast.Logical{Left: expr, Op: op.Kind, OpPos: op.Line, Right: right}
	}
	return expr
}

func (p *parser) parseEquality() ast.Expr {
	expr := p.parseComparison()
	for p.check(token.BANG_EQ) || p.check(token.EQ_EQ) {
		op := p.cur
		p.advance()
		right := p.parseComparison()
		expr = &ast.Binary{Left: expr, Op: op.Kind, OpPos: op.Line, Right: right}
	}
	return expr
}

func (p *parser) parseComparison() ast.Expr {
	expr := p.parseTerm()
	for p.check(token.GT) || p.check(token.GT_EQ) || p.check(token.LT) || p.check(token.LT_EQ) {
		op := p.cur
		p.advance()
		right := p.parseTerm()
		expr = &ast.Binary{Left: expr, Op: op.Kind, OpPos: op.Line, Right: right}
	}
	return expr
}

func (p *parser) parseTerm() ast.Expr {
	expr := p.parseFactor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.cur
		p.advance()
		right := p.parseFactor()
		expr = &ast.Binary{Left: expr, Op: op.Kind, OpPos: op.Line, Right: right}
	}
	return expr
}

func (p *parser) parseFactor() ast.Expr {
	expr := p.parseUnary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.cur
		p.advance()
		right := p.parseUnary()
		expr = &ast.Binary{Left: expr, Op: op.Kind, OpPos: op.Line, Right: right}
	}
	return expr
}

func (p *parser) parseUnary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.cur
		p.advance()
		right := p.parseUnary()
		return &ast.Unary{Op: op.Kind, Start: op.Line, Right: right}
	}
	return p.parseCall()
}

func (p *parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.LPAREN):
			p.advance()
			expr = p.finishCall(expr)
		case p.check(token.DOT):
			p.advance()
			name := p.expect(token.IDENT)
			expr = &ast.Get{Object: expr, Dot: name.Line, Name: name.Lexeme}
		default:
			return expr
		}
	}
}

// maxArgs is the call/parameter count limit this implementation enforces
// (a static error, not a runtime one), matching the book's own cap.
const maxArgs = 255

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.parseExpr())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN)
	return &ast.Call{Callee: callee, Paren: paren.Line, Args: args}
}

func (p *parser) parsePrimary() ast.Expr {
	switch {
	case p.check(token.FALSE):
		tok := p.cur
		p.advance()
		return &ast.Literal{Start: tok.Line, Raw: tok.Lexeme, Value: false}
	case p.check(token.TRUE):
		tok := p.cur
		p.advance()
		return &ast.Literal{Start: tok.Line, Raw: tok.Lexeme, Value: true}
	case p.check(token.NIL):
		tok := p.cur
		p.advance()
		return &ast.Literal{Start: tok.Line, Raw: tok.Lexeme, Value: nil}
	case p.check(token.NUMBER), p.check(token.STRING):
		tok := p.cur
		p.advance()
		return &ast.Literal{Start: tok.Line, Raw: tok.Lexeme, Value: tok.Literal}
	case p.check(token.SUPER):
		tok := p.cur
		p.advance()
		p.expect(token.DOT)
		method := p.expect(token.IDENT)
		return &ast.Super{Start: tok.Line, Method: method.Lexeme}
	case p.check(token.THIS):
		tok := p.cur
		p.advance()
		return &ast.This{Start: tok.Line}
	case p.check(token.IDENT):
		tok := p.cur
		p.advance()
		return &ast.Variable{Start: tok.Line, Name: tok.Lexeme}
	case p.check(token.LPAREN):
		lparen := p.cur
		p.advance()
		inner := p.parseExpr()
		rparen := p.expect(token.RPAREN)
		return &ast.Grouping{Lparen: lparen.Line, Expr: inner, Rparen: rparen.Line}
	default:
		p.errorAtCurrent("Expect expression.")
		panic(errPanicMode)
	}
}
