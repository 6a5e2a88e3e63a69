package rewriter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// assemble writes the rewritten form of a scanned extraction literal:
// for x the literal followed by its arguments, for f the configured call
// wrapped around them. The encoding prefix, excised together with the f/x
// letter, reappears directly in front of the literal.
func (r *Rewriter) assemble(dst *bytes.Buffer, lit *literal) {
	if lit.kind == kindFormat {
		name := r.opts.FunctionName
		if strings.HasSuffix(name, "*") {
			name = name[:len(name)-1] + strconv.Itoa(len(lit.fields))
		}
		dst.WriteString(name)
		dst.WriteByte('(')
		r.marker(dst, lit.line, lit.col)
		dst.WriteString(lit.encoding)
		dst.WriteString(lit.text)
		for _, f := range lit.fields {
			dst.WriteString(", ")
			r.marker(dst, f.line, f.col)
			dst.WriteString(f.expr)
		}
		dst.WriteByte(')')
		return
	}
	r.marker(dst, lit.line, lit.col)
	dst.WriteString(lit.encoding)
	dst.WriteString(lit.text)
	for _, f := range lit.fields {
		dst.WriteString(", ")
		r.marker(dst, f.line, f.col)
		dst.WriteString(f.expr)
	}
}

// marker emits a #line directive mapping the following fragment back to
// its original position, padded with spaces so the fragment re-lexes at
// its original column. Directives cannot be interleaved into another
// directive line, so markers are suppressed there.
func (r *Rewriter) marker(dst *bytes.Buffer, line, col int) {
	if !r.opts.LineDirectives || r.inDirective {
		return
	}
	fmt.Fprintf(dst, "\n#line %d %q\n", line, r.opts.SourcePath)
	for i := 0; i < col; i++ {
		dst.WriteByte(' ')
	}
}
