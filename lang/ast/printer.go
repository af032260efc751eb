package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints a tree of nodes, one per line, indented by depth.
// It is a debugging aid (e.g. wired into a `golox --ast` flag) rather than
// something the evaluator depends on.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// ShowLines, when true, prefixes each node with its starting line.
	ShowLines bool
}

// Print pretty-prints n and everything below it.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, showLines: p.ShowLines}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w         io.Writer
	showLines bool
	depth     int
	err       error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}

	format := "%s"
	args := []interface{}{strings.Repeat(". ", indent)}
	if p.showLines {
		format += "[line %d] "
		start, _ := n.Span()
		args = append(args, int(start))
	}
	format += "%v\n"
	args = append(args, n)

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
