package rewriter

import "bytes"

// scanLineComment copies a // comment verbatim. Line splicing happens
// before comment recognition in the host language, so a comment line whose
// last solid character is a backslash drags the next physical line into the
// comment as well.
func (r *Rewriter) scanLineComment(dst *bytes.Buffer) error {
	dst.WriteByte(r.cur.Next())
	dst.WriteByte(r.cur.Next()) // the two slashes
	for {
		lastSolid := byte(0)
		for {
			b := r.cur.Peek()
			if b == '\n' || b == eofByte {
				break
			}
			r.cur.Next()
			dst.WriteByte(b)
			if b != ' ' && b != '\t' {
				lastSolid = b
			}
		}
		if lastSolid != '\\' {
			return nil // the line end stays with the caller
		}
		if r.cur.Peek() == eofByte {
			return earlyEnd("input ends inside a spliced // comment")
		}
		r.cur.Next()
		dst.WriteByte('\n')
	}
}

// commentMode states how a block comment may cross line boundaries.
type commentMode int

const (
	// commentFreeform allows physical newlines: top level source, raw
	// literal fields.
	commentFreeform commentMode = iota
	// commentSpliced is a comment inside a field of a non-raw literal:
	// only a backslash continuation may carry it to the next line.
	commentSpliced
)

// scanBlockComment copies a /* ... */ comment verbatim, across lines when
// the mode permits.
func (r *Rewriter) scanBlockComment(dst *bytes.Buffer, mode commentMode) error {
	dst.WriteByte(r.cur.Next())
	dst.WriteByte(r.cur.Next()) // "/*"
	for {
		switch b := r.cur.Peek(); b {
		case eofByte:
			return earlyEnd("unterminated block comment")
		case '\n':
			if mode == commentSpliced {
				return r.malformed("end of line inside a comment in an expression field")
			}
			r.cur.Next()
			dst.WriteByte('\n')
		case '\\':
			if mode == commentSpliced {
				if err := r.scanContinuation(dst); err != nil {
					return err
				}
				continue
			}
			r.cur.Next()
			dst.WriteByte(b)
		case '*':
			r.cur.Next()
			dst.WriteByte(b)
			if r.cur.Peek() == '/' {
				dst.WriteByte(r.cur.Next())
				return nil
			}
		default:
			r.cur.Next()
			dst.WriteByte(b)
		}
	}
}

// scanContinuation handles a backslash inside spliced (non-raw) context.
// The backslash is always copied. If only blanks remain before the line
// end, they are dropped, the newline is written and scanning resumes on
// the next physical line; otherwise the byte after the backslash is copied
// too, so an escaped quote or brace never terminates anything.
func (r *Rewriter) scanContinuation(dst *bytes.Buffer) error {
	dst.WriteByte(r.cur.Next()) // the backslash
	k := 0
	for {
		b := r.cur.PeekAt(k)
		if b == ' ' || b == '\t' {
			k++
			continue
		}
		if b == '\n' {
			for ; k >= 0; k-- { // blanks and the newline itself
				r.cur.Next()
			}
			dst.WriteByte('\n')
			return nil
		}
		if b == eofByte {
			return earlyEnd("input ends after '\\' at end of line")
		}
		dst.WriteByte(r.cur.Next())
		return nil
	}
}
