// Package maincmd implements golox's command-line entry point: a REPL when
// invoked with no argument, batch execution of a single script file
// otherwise. Grounded on the teacher's internal/maincmd/maincmd.go for the
// mna/mainer-based Cmd shape (SetArgs/SetFlags/Validate/Main, Stdio,
// signal-aware context), trimmed from the teacher's reflection-dispatched
// multi-subcommand tool (tokenize/parse/resolve, one method per verb) down
// to golox's single implicit command - see DESIGN.md for why buildCmds'
// reflection dispatch has no place here.
package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"
	"github.com/tjbuckner/golox/lang/token"
)

const binName = "golox"

var shortUsage = fmt.Sprintf("usage: %s [-ast] [script]\n", binName)

// Cmd is golox's mainer.Cmd: no subcommands, one optional positional
// argument naming a script to run.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	AST     bool `flag:"ast"`

	args []string
}

// printPipelineError writes err to stderr, rendering a scan/parse/resolve
// failure (a token.ErrorList) with this language's own
// "[line N] Error<where>: msg" format rather than go/scanner's stock
// "filename:line: msg" one. Any other
// error (a read failure, a *interp.RuntimeError, which already formats
// itself that way) is printed as-is.
func printPipelineError(stderr io.Writer, err error) {
	if el, ok := err.(token.ErrorList); ok {
		fmt.Fprintln(stderr, token.FormatErrorList(el))
		return
	}
	fmt.Fprintln(stderr, err)
}

func (c *Cmd) SetArgs(args []string)    { c.args = args }
func (c *Cmd) SetFlags(map[string]bool) {}
func (c *Cmd) Validate() error          { return nil }

// Main parses flags, then dispatches to the REPL or to batch file
// execution, following spec.md §6's exit-code contract: 0 on success, 64 on
// a usage error, 75 on a scan/parse/resolve/runtime failure in batch mode.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(64)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, shortUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if len(c.args) > 1 {
		fmt.Fprint(stdio.Stderr, shortUsage)
		return mainer.ExitCode(64)
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if len(c.args) == 1 {
		return runFile(ctx, stdio, c.args[0], c.AST)
	}
	return runREPL(ctx, stdio)
}
