package rewriter

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// DefaultFunctionName is the call every f literal is rewritten into unless
// the caller configures another one.
const DefaultFunctionName = "std::format"

// Options control how extraction literals are rewritten. The zero value is
// usable: f literals become std::format calls without line directives.
type Options struct {
	// FunctionName is the call name emitted for f literals. A trailing '*'
	// is replaced with the number of extracted arguments.
	FunctionName string
	// LineDirectives inserts #line markers before each rewritten literal
	// and argument so compiler diagnostics point back at the original
	// source position.
	LineDirectives bool
	// SourcePath is the file name quoted inside #line markers.
	SourcePath string
}

// Rewriter copies C++-family source text from an input stream to an output
// stream, rewriting every f/x extraction literal it encounters and passing
// every other byte through unchanged.
type Rewriter struct {
	cur  *cursor
	w    *bufio.Writer
	buf  bytes.Buffer // output accumulated for the current top-level line
	opts Options

	// inDirective suppresses #line markers and plain-literal scanning
	// while copying a preprocessor directive and its continuation lines.
	inDirective bool
}

// New creates a Rewriter over the given streams.
func New(w io.Writer, r io.Reader, opts Options) *Rewriter {
	if opts.FunctionName == "" {
		opts.FunctionName = DefaultFunctionName
	}
	return &Rewriter{
		cur:  newCursor(r),
		w:    bufio.NewWriter(w),
		opts: opts,
	}
}

// RewriteString processes src in memory and returns the rewritten text.
func RewriteString(src string, opts Options) (string, error) {
	var out bytes.Buffer
	if err := New(&out, strings.NewReader(src), opts).Process(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Process consumes the whole input. It stops at the first structural error;
// output already flushed stays flushed, the rest of the failed line is
// discarded. The trailing-newline state of the input is preserved.
func (r *Rewriter) Process() error {
	// Lines completed before a failure must reach the output stream; only
	// the failed line itself, still in r.buf, is discarded.
	defer r.w.Flush()

	for {
		switch b := r.cur.Peek(); {
		case b == eofByte:
			if err := r.flushLine(false); err != nil {
				return err
			}
			if err := r.cur.Err(); err != nil {
				return err
			}
			return r.w.Flush()
		case b == '\n':
			r.cur.Next()
			if err := r.flushLine(true); err != nil {
				return err
			}
		case b == '#':
			if err := r.scanDirective(); err != nil {
				return err
			}
		case b == '/' && r.cur.PeekAt(1) == '/':
			if err := r.scanLineComment(&r.buf); err != nil {
				return err
			}
		case b == '/' && r.cur.PeekAt(1) == '*':
			if err := r.scanBlockComment(&r.buf, commentFreeform); err != nil {
				return err
			}
		case b == '"' || b == '\'':
			if err := r.scanLiteral(&r.buf); err != nil {
				return err
			}
		default:
			r.buf.WriteByte(r.cur.Next())
		}
	}
}

// flushLine writes the accumulated output line, optionally with its
// terminating newline.
func (r *Rewriter) flushLine(newline bool) error {
	if _, err := r.w.Write(r.buf.Bytes()); err != nil {
		return err
	}
	r.buf.Reset()
	if newline {
		return r.w.WriteByte('\n')
	}
	return nil
}

// scanDirective copies a preprocessor directive verbatim, merging
// backslash-continuation lines. Quotes inside directives are not required
// to balance (#error messages, include paths), so ordinary literals pass
// through unscanned; only quotes carrying an f/x prefix are rewritten, and
// those without #line markers since a directive cannot be split by one.
func (r *Rewriter) scanDirective() error {
	r.inDirective = true
	defer func() { r.inDirective = false }()

	lastSolid := r.cur.Peek() // the '#'
	for {
		switch b := r.cur.Peek(); b {
		case eofByte:
			if lastSolid == '\\' {
				return earlyEnd("input ends after a line continuation")
			}
			return nil
		case '\n':
			if lastSolid != '\\' {
				return nil // newline belongs to the driver loop
			}
			r.cur.Next()
			r.buf.WriteByte('\n')
			lastSolid = 0
		case '"', '\'':
			kind, raw, _, _ := sniffPrefix(r.buf.Bytes(), b)
			if kind == kindPlain && !raw {
				// An ordinary quote in a directive is opaque text.
				r.buf.WriteByte(r.cur.Next())
				lastSolid = b
				continue
			}
			// An f/x literal is rewritten even here; a bare R"..." is
			// scanned whole so its body may span lines and hold
			// unbalanced quotes.
			if err := r.scanLiteral(&r.buf); err != nil {
				return err
			}
			lastSolid = b
		case '/':
			// Comments are stripped before directives are parsed in the
			// host language, so quotes inside them never start a literal.
			switch r.cur.PeekAt(1) {
			case '/':
				if err := r.scanLineComment(&r.buf); err != nil {
					return err
				}
				lastSolid = b
			case '*':
				if err := r.scanBlockComment(&r.buf, commentFreeform); err != nil {
					return err
				}
				lastSolid = b
			default:
				r.cur.Next()
				r.buf.WriteByte(b)
				lastSolid = b
			}
		default:
			r.cur.Next()
			r.buf.WriteByte(b)
			if b != ' ' && b != '\t' {
				lastSolid = b
			}
		}
	}
}
