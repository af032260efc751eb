package token

import (
	"fmt"
	goscanner "go/scanner"
	gotoken "go/token"
	"strings"
)

// Pos is a 1-based source line number. This language's diagnostics are
// line-only (spec §6), so unlike the richer packed line+column encodings
// used elsewhere, Pos is simply the line number; 0 means unknown.
type Pos int

// Position returns the go/token.Position used to key scanner/parser/resolver
// errors.
func (p Pos) Position(filename string) gotoken.Position {
	return gotoken.Position{Filename: filename, Line: int(p)}
}

// IsValid reports whether p is a known position.
func (p Pos) IsValid() bool { return p > 0 }

type (
	// Error and ErrorList are the standard library's go/scanner error types.
	// The scanner, parser and resolver each accumulate diagnostics in an
	// ErrorList, call Sort once the pass is done, and surface the result with
	// Err, which is nil when the list is empty.
	Error     = goscanner.Error
	ErrorList = goscanner.ErrorList
)

// NewError builds an Error at the given position. where is a context suffix
// such as " at 'foo'" or " at end", or "" when the diagnostic has no useful
// surrounding token (scanner and resolver errors usually leave it empty).
func NewError(pos Pos, filename, where, message string) Error {
	return Error{Pos: pos.Position(filename), Msg: where + ": " + message}
}

// FormatErrorList renders every error in the list using this language's
// one-line error format, "[line N] Error<where>: <message>", one per line.
func FormatErrorList(el ErrorList) string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[line %d] Error%s", e.Pos.Line, e.Msg)
	}
	return sb.String()
}
