package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/interp"
	"github.com/tjbuckner/golox/lang/parser"
	"github.com/tjbuckner/golox/lang/resolver"
	"github.com/tjbuckner/golox/lang/scanner"
)

// runFile reads and executes a single script, the batch-mode half of
// spec.md §6's CLI contract. ctx is accepted for signature symmetry with the
// signal-aware context Main constructs; golox does not support cancelling a
// running program (spec.md §5), so it is not consulted here. When
// printAST is set (the -ast flag) the parsed chunk is pretty-printed to
// stdout before it runs, using lang/ast's Printer.
func runFile(_ context.Context, stdio mainer.Stdio, path string, printAST bool) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(75)
	}

	toks, err := scanner.Scan(path, src)
	if err != nil {
		printPipelineError(stdio.Stderr, err)
		return mainer.ExitCode(75)
	}
	chunk, err := parser.Parse(path, toks)
	if err != nil {
		printPipelineError(stdio.Stderr, err)
		return mainer.ExitCode(75)
	}
	resolutions, err := resolver.Resolve(path, chunk)
	if err != nil {
		printPipelineError(stdio.Stderr, err)
		return mainer.ExitCode(75)
	}

	if printAST {
		p := ast.Printer{Output: stdio.Stdout, ShowLines: true}
		if err := p.Print(chunk); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return mainer.ExitCode(75)
		}
	}

	in := interp.New(stdio.Stdout, resolutions)
	if err := in.Interpret(chunk.Stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.ExitCode(75)
	}
	return mainer.Success
}
