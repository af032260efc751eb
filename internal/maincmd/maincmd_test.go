package maincmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, args ...string) (mainer.ExitCode, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	c := Cmd{BuildVersion: "0.0.0", BuildDate: "2026-01-01"}
	code := c.Main(append([]string{binName}, args...), mainer.Stdio{
		Stdin:  bytes.NewReader(nil),
		Stdout: &out,
		Stderr: &errOut,
	})
	return code, out.String(), errOut.String()
}

func TestMainRunsScriptSuccessfully(t *testing.T) {
	path := filepath.Join("testdata", "in", "closures.lox")
	code, out, errOut := runMain(t, path)

	require.Equal(t, mainer.Success, code)
	require.Equal(t, "1\n2\n", out)
	require.Empty(t, errOut)
}

func TestMainExitsWithRuntimeErrorCode(t *testing.T) {
	path := filepath.Join("testdata", "in", "runtime_error.lox")
	code, out, errOut := runMain(t, path)

	require.Equal(t, mainer.ExitCode(75), code)
	require.Equal(t, "before\n", out)
	require.Contains(t, errOut, "Division by zero.")
}

func TestMainExitsWithParseErrorInLanguageFormat(t *testing.T) {
	path := filepath.Join("testdata", "in", "parse_error.lox")
	code, out, errOut := runMain(t, path)

	require.Equal(t, mainer.ExitCode(75), code)
	require.Empty(t, out)
	require.Equal(t, "[line 1] Error at ';': Expect ')'.\n", errOut)
}

func TestMainExitsWithUsageErrorOnTooManyArgs(t *testing.T) {
	code, _, errOut := runMain(t, "one.lox", "two.lox")

	require.Equal(t, mainer.ExitCode(64), code)
	require.Contains(t, errOut, shortUsage)
}

func TestMainExitsWithErrorCodeOnUnreadableScript(t *testing.T) {
	code, _, errOut := runMain(t, "does-not-exist.lox")

	require.Equal(t, mainer.ExitCode(75), code)
	require.NotEmpty(t, errOut)
	_, statErr := os.Stat("does-not-exist.lox")
	require.True(t, os.IsNotExist(statErr))
}

func TestMainPrintsASTBeforeRunning(t *testing.T) {
	path := filepath.Join("testdata", "in", "closures.lox")
	code, out, errOut := runMain(t, "-ast", path)

	require.Equal(t, mainer.Success, code)
	require.Empty(t, errOut)
	require.Contains(t, out, "[line 1]")
	// the program's own output still follows the AST dump.
	require.Contains(t, out, "1\n2\n")
}

func TestMainPrintsVersion(t *testing.T) {
	code, out, _ := runMain(t, "-v")

	require.Equal(t, mainer.Success, code)
	require.Contains(t, out, "0.0.0")
	require.Contains(t, out, "2026-01-01")
}

func TestMainPrintsHelp(t *testing.T) {
	code, out, _ := runMain(t, "-h")

	require.Equal(t, mainer.Success, code)
	require.Equal(t, shortUsage, out)
}
