package parser

import (
	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/token"
)

func (p *parser) parseChunk() *ast.Chunk {
	var chunk ast.Chunk
	chunk.Name = p.filename

	for !p.check(token.EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			chunk.Stmts = append(chunk.Stmts, stmt)
		}
	}
	chunk.EOF = p.cur.Line
	return &chunk
}

// parseBlock parses a brace-delimited sequence of declarations. The opening
// '{' must already have been consumed by the caller.
func (p *parser) parseBlock(start token.Pos) *ast.Block {
	var block ast.Block
	block.Start = start

	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	end := p.expect(token.RBRACE)
	block.End = end.Line
	return &block
}

// parseDeclaration parses a single statement, recovering via synchronize on
// parse errors so that one bad statement doesn't stop the whole file from
// being checked.
func (p *parser) parseDeclaration() (stmt ast.Stmt) {
	defer func() {
		if err := recover(); err != nil {
			if err == errPanicMode {
				p.synchronize()
				stmt = nil
				return
			}
			panic(err)
		}
	}()

	switch {
	case p.check(token.CLASS):
		return p.parseClassDecl()
	case p.check(token.FUN):
		return p.parseFunDecl("function")
	case p.check(token.VAR):
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

func (p *parser) parseVarDecl() *ast.VarStmt {
	start := p.expect(token.VAR)
	name := p.expect(token.IDENT)

	var init ast.Expr
	if p.match(token.EQ) {
		init = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	return &ast.VarStmt{Start: start.Line, Name: name.Lexeme, Init: init}
}

func (p *parser) parseClassDecl() *ast.ClassStmt {
	start := p.expect(token.CLASS)
	name := p.expect(token.IDENT)

	var super *ast.Variable
	if p.match(token.LT) {
		superName := p.expect(token.IDENT)
		super = &ast.Variable{Start: superName.Line, Name: superName.Lexeme}
	}

	p.expect(token.LBRACE)
	var methods []*ast.FunStmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		methods = append(methods, p.parseFunDecl("method"))
	}
	end := p.expect(token.RBRACE)

	return &ast.ClassStmt{Start: start.Line, Name: name.Lexeme, Superclass: super, Methods: methods, End: end.Line}
}

func (p *parser) parseFunDecl(kind string) *ast.FunStmt {
	start := p.cur.Line
	if kind == "function" {
		p.expect(token.FUN)
	}
	name := p.expect(token.IDENT)

	p.expect(token.LPAREN)
	var params []string
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENT).Lexeme)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)

	lbrace := p.expect(token.LBRACE)
	body := p.parseBlock(lbrace.Line)

	return &ast.FunStmt{Start: start, Name: name.Lexeme, Params: params, Body: body.Stmts, End: body.End}
}
