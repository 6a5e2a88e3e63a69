package rewriter

import (
	"bytes"
	"strings"
)

// scanField is entered just past a field's opening '{'. It extracts the
// expression, folds a debug label into the rewritten literal when present,
// emits the {} or {:spec} placeholder and records the argument.
func (r *Rewriter) scanField(text *bytes.Buffer, lit *literal) error {
	line, col := r.cur.Line(), r.cur.Col()
	expr, hasSpec, err := r.scanExpression(lit.raw)
	if err != nil {
		return err
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
	if hasSpec {
		text.WriteByte(r.cur.Next()) // the ':'
		if err := r.scanFormatSpec(text, lit); err != nil {
			return err
		}
	}
	text.WriteByte(r.cur.Next()) // the '}'
	return nil
}

// splitDebugLabel implements the "name=" convention: when the expression's
// last solid byte is '=', the entire original text including the '=' is
// echoed into the literal as a label and the argument is the expression
// with the '=' and the blanks around it removed.
func splitDebugLabel(expr string) (label, arg string, ok bool) {
	trimmed := strings.TrimRight(expr, " \t")
	if !strings.HasSuffix(trimmed, "=") {
		return "", expr, false
	}
	return expr, strings.TrimRight(strings.TrimSuffix(trimmed, "="), " \t"), true
}

// scanExpression accumulates one field expression until its terminating
// '}' or ':' at bracket depth zero and ternary depth zero. The terminator
// is left unconsumed; hasSpec tells the caller which one it was.
//
// The scanner tracks only the nesting structure needed to find the end:
// balanced (), [] and {}, the number of '?' still waiting for their ':',
// '::' scope resolution, and nested literals and comments which recurse
// through the regular scanners and land verbatim in the expression.
func (r *Rewriter) scanExpression(raw bool) (expr string, hasSpec bool, err error) {
	var buf bytes.Buffer
	var closers []byte // expected closing brackets, innermost last
	ternary := 0

	for {
		b := r.cur.Peek()
		if n := len(closers); n > 0 && b == closers[n-1] {
			closers = closers[:n-1]
			buf.WriteByte(r.cur.Next())
			continue
		}
		switch b {
		case eofByte:
			return "", false, earlyEnd("input ends inside an expression field")
		case '\n':
			if !raw {
				return "", false, r.malformed("end of line inside an expression field")
			}
			r.cur.Next()
			buf.WriteByte('\n')
		case '(':
			closers = append(closers, ')')
			buf.WriteByte(r.cur.Next())
		case '[':
			closers = append(closers, ']')
			buf.WriteByte(r.cur.Next())
		case '{':
			closers = append(closers, '}')
			buf.WriteByte(r.cur.Next())
		case ')', ']':
			if len(closers) > 0 {
				return "", false, r.malformed("mismatched brackets in expression field: expected '%c', found '%c'", closers[len(closers)-1], b)
			}
			return "", false, r.malformed("unmatched '%c' in expression field", b)
		case '}':
			if len(closers) > 0 {
				return "", false, r.malformed("mismatched brackets in expression field: expected '%c', found '}'", closers[len(closers)-1])
			}
			if ternary > 0 {
				return "", false, r.malformed("'}' before the ':' of a conditional operator")
			}
			return buf.String(), false, nil
		case '?':
			if len(closers) == 0 {
				ternary++
			}
			buf.WriteByte(r.cur.Next())
		case ':':
			if r.cur.PeekAt(1) == ':' && isIdentByte(r.cur.PeekAt(2)) {
				// Scope resolution. A second colon followed by anything
				// else is read as a format spec starting with a ':' fill
				// character instead; the grammar cannot distinguish the
				// two, so qualified names win whenever a name could follow.
				buf.WriteByte(r.cur.Next())
				buf.WriteByte(r.cur.Next())
				continue
			}
			if len(closers) == 0 {
				if ternary == 0 {
					return buf.String(), true, nil
				}
				ternary--
			}
			buf.WriteByte(r.cur.Next())
		case '\\':
			if raw {
				buf.WriteByte(r.cur.Next())
			} else if err := r.scanContinuation(&buf); err != nil {
				return "", false, err
			}
		case '"', '\'':
			if err := r.scanLiteral(&buf); err != nil {
				return "", false, err
			}
		case '/':
			switch r.cur.PeekAt(1) {
			case '*':
				mode := commentSpliced
				if raw {
					mode = commentFreeform
				}
				if err := r.scanBlockComment(&buf, mode); err != nil {
					return "", false, err
				}
			case '/':
				if err := r.scanLineComment(&buf); err != nil {
					return "", false, err
				}
			default:
				buf.WriteByte(r.cur.Next())
			}
		default:
			buf.WriteByte(r.cur.Next())
		}
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
