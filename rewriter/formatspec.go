package rewriter

import (
	"bytes"
	"strings"
)

// scanFormatSpec copies the text after a field's top-level ':' into the
// rewritten literal until the field's closing '}', which is left for the
// caller. A '{' starts a nested field contributing a further argument; a
// nested field may not carry a format spec of its own.
func (r *Rewriter) scanFormatSpec(text *bytes.Buffer, lit *literal) error {
	for {
		switch b := r.cur.Peek(); b {
		case '}':
			return nil
		case '{':
			r.cur.Next()
			line, col := r.cur.Line(), r.cur.Col()
			expr, hasSpec, err := r.scanExpression(lit.raw)
			if err != nil {
				return err
			}
			if hasSpec {
				return r.malformed("nested field in a format spec may not have its own format spec")
			}
			arg := expr
			if label, stripped, ok := splitDebugLabel(expr); ok {
				text.WriteString(label)
				arg = stripped
			}
			if strings.TrimSpace(arg) == "" {
				return r.malformed("empty expression field")
			}
			lit.fields = append(lit.fields, field{line: line, col: col, expr: arg})
			text.WriteByte('{')
			text.WriteByte(r.cur.Next()) // the nested '}'
		case '\\':
			if lit.raw {
				r.cur.Next()
				text.WriteByte(b)
			} else if err := r.scanContinuation(text); err != nil {
				return err
			}
		case '\n':
			if !lit.raw {
				return r.malformed("end of line inside a format spec")
			}
			r.cur.Next()
			text.WriteByte('\n')
		case eofByte:
			return earlyEnd("input ends inside a format spec")
		default:
			r.cur.Next()
			text.WriteByte(b)
		}
	}
}
