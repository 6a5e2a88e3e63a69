package rewriter

import "bytes"

// literalKind classifies what a quote starts.
type literalKind int

const (
	kindPlain   literalKind = iota // ordinary literal, copied verbatim
	kindFormat                     // f literal: rewritten into a call
	kindExtract                    // x literal: literal plus bare arguments
)

// field is one extracted expression together with the source position of
// its first byte, kept for #line markers.
type field struct {
	line, col int
	expr      string
}

// literal describes one scanned literal. delim is the raw delimiter between
// the quote and the parenthesis; text is the rewritten literal including
// quotes and delimiters but excluding the encoding prefix, which the
// assembler re-attaches in front.
type literal struct {
	raw      bool
	kind     literalKind
	encoding string
	delim    string
	term     byte
	line     int
	col      int
	text     string
	fields   []field
}

// sniffPrefix inspects the bytes already copied to the destination buffer
// immediately before an opening quote. The prefix letters were consumed as
// ordinary text before the quote was recognized, so they are recovered by
// looking backward: an optional R, an optional encoding prefix, and an
// optional f or x outermost, as in fu8R"(...)". It returns the literal
// kind, rawness, encoding prefix and the total number of prefix bytes to
// excise. Only string literals carry prefixes: a letter before a ' is part
// of an adjacent token, as in 0xff'232'111.
func sniffPrefix(tail []byte, term byte) (kind literalKind, raw bool, encoding string, n int) {
	if term != '"' {
		return kindPlain, false, "", 0
	}
	i := len(tail)
	if i > 0 && tail[i-1] == 'R' {
		raw = true
		i--
	}
	if i >= 2 && tail[i-2] == 'u' && tail[i-1] == '8' {
		encoding = "u8"
		i -= 2
	} else if i > 0 && (tail[i-1] == 'u' || tail[i-1] == 'U' || tail[i-1] == 'L') {
		encoding = string(tail[i-1])
		i--
	}
	if i > 0 {
		switch tail[i-1] {
		case 'f', 'F':
			kind = kindFormat
			i--
		case 'x', 'X':
			kind = kindExtract
			i--
		}
	}
	if kind == kindPlain {
		// No f/x: the encoding prefix stays where it is and only the raw
		// flag matters, so nothing is excised.
		return kindPlain, raw, "", 0
	}
	return kind, raw, encoding, len(tail) - i
}

// scanLiteral is entered with the cursor on an opening quote. Plain
// literals are copied into dst verbatim; extraction literals are rewritten
// and assembled into dst together with their argument list.
func (r *Rewriter) scanLiteral(dst *bytes.Buffer) error {
	term := r.cur.Peek()
	kind, raw, encoding, n := sniffPrefix(dst.Bytes(), term)
	if kind == kindPlain {
		return r.scanPlainLiteral(dst, raw, term)
	}

	lit := &literal{
		raw:      raw,
		kind:     kind,
		encoding: encoding,
		term:     term,
		line:     r.cur.Line(),
		col:      r.cur.Col() - n,
	}
	dst.Truncate(dst.Len() - n) // excise the consumed prefix bytes
	r.cur.Next()                // the quote

	var text bytes.Buffer
	if raw {
		delim, err := r.scanRawDelimiter()
		if err != nil {
			return err
		}
		lit.delim = delim
		text.WriteString("R\"")
		text.WriteString(delim)
		text.WriteByte('(')
	} else {
		text.WriteByte(term)
	}

	if err := r.scanLiteralBody(&text, lit); err != nil {
		return err
	}
	lit.text = text.String()
	r.assemble(dst, lit)
	return nil
}

// scanRawDelimiter reads the delimiter characters between R" and the
// opening parenthesis.
func (r *Rewriter) scanRawDelimiter() (string, error) {
	var delim []byte
	for {
		switch b := r.cur.Peek(); b {
		case '(':
			r.cur.Next()
			return string(delim), nil
		case '\n':
			return "", r.malformed("no '(' before end of line after R\"")
		case eofByte:
			return "", earlyEnd("input ends inside a raw literal delimiter")
		default:
			r.cur.Next()
			delim = append(delim, b)
		}
	}
}

// scanPlainLiteral copies an ordinary or raw literal verbatim. The opening
// quote (and for raw literals the prefix letters already in dst) stay
// untouched; nothing inside is interpreted beyond finding the end.
func (r *Rewriter) scanPlainLiteral(dst *bytes.Buffer, raw bool, term byte) error {
	dst.WriteByte(r.cur.Next()) // the quote
	if raw {
		delim, err := r.scanRawDelimiter()
		if err != nil {
			return err
		}
		dst.WriteString(delim)
		dst.WriteByte('(')
		return r.scanRawTail(dst, delim, term, nil)
	}
	for {
		switch b := r.cur.Peek(); b {
		case term:
			dst.WriteByte(r.cur.Next())
			return nil
		case '\\':
			if err := r.scanLiteralEscape(dst); err != nil {
				return err
			}
		case '\n':
			return r.malformed("end of line inside a string literal")
		case eofByte:
			return earlyEnd("input ends inside a string literal")
		default:
			dst.WriteByte(r.cur.Next())
		}
	}
}

// scanLiteralEscape handles a backslash in a non-raw literal body. A
// backslash followed by nothing but blanks before the line end is a
// continuation: unlike in expression fields the blanks are part of the
// literal and are kept.
func (r *Rewriter) scanLiteralEscape(dst *bytes.Buffer) error {
	dst.WriteByte(r.cur.Next()) // the backslash
	k := 0
	for {
		b := r.cur.PeekAt(k)
		if b == ' ' || b == '\t' {
			k++
			continue
		}
		if b == '\n' {
			for ; k >= 0; k-- {
				dst.WriteByte(r.cur.Next()) // blanks, then the newline
			}
			return nil
		}
		if b == eofByte {
			return earlyEnd("input ends after '\\' at end of line inside a string literal")
		}
		dst.WriteByte(r.cur.Next()) // the escaped byte
		return nil
	}
}

// scanRawTail copies a raw literal body until ) + delimiter + terminator.
// Any other ')' run, including one with a partially matching delimiter, is
// body text. When onBrace is non-nil it is invoked for every unconsumed
// '{' or '}' so extraction literals can cut in; plain raw literals pass
// nil.
func (r *Rewriter) scanRawTail(dst *bytes.Buffer, delim string, term byte, onBrace func(byte) error) error {
	for {
		switch b := r.cur.Peek(); b {
		case eofByte:
			return earlyEnd("input ends inside a raw literal")
		case '\n':
			r.cur.Next()
			dst.WriteByte('\n')
		case ')':
			if r.rawEndAhead(delim, term) {
				for i := 0; i < len(delim)+2; i++ {
					dst.WriteByte(r.cur.Next())
				}
				return nil
			}
			r.cur.Next()
			dst.WriteByte(b)
		case '{', '}':
			if onBrace != nil {
				if err := onBrace(b); err != nil {
					return err
				}
				continue
			}
			r.cur.Next()
			dst.WriteByte(b)
		default:
			r.cur.Next()
			dst.WriteByte(b)
		}
	}
}

// rawEndAhead reports whether the cursor, positioned on ')', looks at the
// exact delimiter followed by the terminator.
func (r *Rewriter) rawEndAhead(delim string, term byte) bool {
	for i := 0; i < len(delim); i++ {
		if r.cur.PeekAt(1+i) != delim[i] {
			return false
		}
	}
	return r.cur.PeekAt(1+len(delim)) == term
}

// scanLiteralBody walks an extraction literal's body, copying plain text
// into the rewritten literal and cutting to the field parser at each
// unescaped brace.
func (r *Rewriter) scanLiteralBody(text *bytes.Buffer, lit *literal) error {
	if lit.raw {
		return r.scanRawTail(text, lit.delim, lit.term, func(b byte) error {
			return r.scanBrace(text, lit, b)
		})
	}
	for {
		switch b := r.cur.Peek(); b {
		case lit.term:
			text.WriteByte(r.cur.Next())
			return nil
		case '\\':
			if err := r.scanLiteralEscape(text); err != nil {
				return err
			}
		case '\n':
			return r.malformed("end of line inside a string literal")
		case eofByte:
			return earlyEnd("input ends inside a string literal")
		case '{', '}':
			if err := r.scanBrace(text, lit, b); err != nil {
				return err
			}
		default:
			text.WriteByte(r.cur.Next())
		}
	}
}

// scanBrace handles an unescaped brace inside an extraction literal body:
// doubled braces collapse to one literal brace, an opening brace starts an
// extraction field, and a lone closing brace is an error.
func (r *Rewriter) scanBrace(text *bytes.Buffer, lit *literal, b byte) error {
	r.cur.Next()
	if r.cur.Peek() == b {
		// {{ or }}: one literal brace in the rewritten text. The consumer
		// of the rewritten literal receives it undoubled.
		r.cur.Next()
		text.WriteByte(b)
		return nil
	}
	if b == '}' {
		return r.malformed("single '}' in an f/x literal: closing braces must be doubled")
	}
	return r.scanField(text, lit)
}
