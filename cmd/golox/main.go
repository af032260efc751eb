// Command golox runs the Lox interpreter: with no argument it starts a
// REPL, with one argument it executes that file as a script.
package main

import (
	"os"

	"github.com/mna/mainer"
	"github.com/tjbuckner/golox/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
