package parser

import (
	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/token"
)

func (p *parser) parseStatement() ast.Stmt {
	switch {
	case p.check(token.PRINT):
		return p.parsePrintStmt()
	case p.check(token.LBRACE):
		lbrace := p.cur
		p.advance()
		return p.parseBlock(lbrace.Line)
	case p.check(token.IF):
		return p.parseIfStmt()
	case p.check(token.WHILE):
		return p.parseWhileStmt()
	case p.check(token.FOR):
		return p.parseForStmt()
	case p.check(token.RETURN):
		return p.parseReturnStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parsePrintStmt() *ast.PrintStmt {
	start := p.expect(token.PRINT)
	x := p.parseExpr()
	p.expect(token.SEMICOLON)
	return &ast.PrintStmt{Start: start.Line, X: x}
}

func (p *parser) parseExprStmt() *ast.ExprStmt {
	x := p.parseExpr()
	p.expect(token.SEMICOLON)
	return &ast.ExprStmt{X: x}
}

func (p *parser) parseIfStmt() *ast.IfStmt {
	start := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)

	then := p.parseStatement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.parseStatement()
	}
	return &ast.IfStmt{Start: start.Line, Cond: cond, Then: then, Else: els}
}

func (p *parser) parseWhileStmt() *ast.WhileStmt {
	start := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return &ast.WhileStmt{Start: start.Line, Cond: cond, Body: body}
}

// parseForStmt desugars `for (init; cond; post) body` into the equivalent
// block/while form at parse time, so the resolver and evaluator never need
// to know about `for` at all: `{ init; while (cond) { body; post; } }`.
func (p *parser) parseForStmt() ast.Stmt {
	start := p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.check(token.VAR):
		init = p.parseVarDecl()
	default:
		init = p.parseExprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)

	var post ast.Expr
	if !p.check(token.RPAREN) {
		post = p.parseExpr()
	}
	p.expect(token.RPAREN)

	body := p.parseStatement()

	if post != nil {
		body = &ast.Block{Start: start.Line, End: start.Line, Stmts: []ast.Stmt{body, &ast.ExprStmt{X: post}}}
	}
	if cond == nil {
		cond = &ast.Literal{Start: start.Line, Raw: "true", Value: true}
	}
	loop := ast.Stmt(&ast.WhileStmt{Start: start.Line, Cond: cond, Body: body})

	if init == nil {
		return loop
	}
	return &ast.Block{Start: start.Line, End: start.Line, Stmts: []ast.Stmt{init, loop}}
}

func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.expect(token.RETURN)
	var x ast.Expr
	if !p.check(token.SEMICOLON) {
		x = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Start: start.Line, X: x}
}
