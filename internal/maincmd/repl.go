package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/tjbuckner/golox/lang/interp"
	"github.com/tjbuckner/golox/lang/parser"
	"github.com/tjbuckner/golox/lang/resolver"
	"github.com/tjbuckner/golox/lang/scanner"
	"github.com/tjbuckner/golox/lang/value"
)

// runREPL reads one line at a time from stdin, evaluates it, and prints the
// "> " prompt before each (spec.md §6). Scan, parse and resolve errors are
// printed and the loop continues; a runtime error is printed and swallowed
// too - only EOF on stdin ends the REPL, and it always exits 0.
func runREPL(_ context.Context, stdio mainer.Stdio) mainer.ExitCode {
	globals := interp.NewGlobals()
	globals.Define("clock", value.Clock())

	scan := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !scan.Scan() {
			return mainer.Success
		}
		line := scan.Text()

		toks, err := scanner.Scan("<stdin>", []byte(line))
		if err != nil {
			printPipelineError(stdio.Stderr, err)
			continue
		}
		chunk, err := parser.Parse("<stdin>", toks)
		if err != nil {
			printPipelineError(stdio.Stderr, err)
			continue
		}
		resolutions, err := resolver.Resolve("<stdin>", chunk)
		if err != nil {
			printPipelineError(stdio.Stderr, err)
			continue
		}

		in := interp.NewWithGlobals(stdio.Stdout, resolutions, globals)
		if err := in.Interpret(chunk.Stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
		}
	}
}
