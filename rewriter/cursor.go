package rewriter

import (
	"bufio"
	"io"
)

// cursor is a line-buffered byte source. It exposes the current physical
// line one byte at a time, reporting a synthetic '\n' at each line boundary
// and eofByte once the input runs out. The '\n' sentinel is consumable
// (consuming it loads the next line); eofByte is terminal and never
// consumed, so callers at any nesting depth can decide for themselves
// whether running out of input is an error.
type cursor struct {
	r      *bufio.Reader
	line   []byte // current line, newline stripped
	pos    int
	lineNo int
	nl     bool // current line was newline-terminated in the input
	done   bool // no more bytes at all
	err    error
}

// eofByte is the end-of-input sentinel returned by Peek and Next.
const eofByte = 0

func newCursor(r io.Reader) *cursor {
	c := &cursor{r: bufio.NewReader(r)}
	c.load()
	return c
}

// load reads the next physical line. A line returned without a trailing
// '\n' is the final line of the input.
func (c *cursor) load() {
	s, err := c.r.ReadString('\n')
	if err != nil && err != io.EOF {
		c.err = err
		c.done = true
		return
	}
	if s == "" {
		c.done = true
		return
	}
	if s[len(s)-1] == '\n' {
		c.line = []byte(s[:len(s)-1])
		c.nl = true
	} else {
		c.line = []byte(s)
		c.nl = false
	}
	c.pos = 0
	c.lineNo++
}

// Peek returns the current byte without consuming it.
func (c *cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte at the given lookahead offset. Offsets past the
// end of the current line report the line's own sentinel; lookahead never
// crosses into a not-yet-loaded line.
func (c *cursor) PeekAt(k int) byte {
	if c.done {
		return eofByte
	}
	if i := c.pos + k; i < len(c.line) {
		return c.line[i]
	}
	if c.nl {
		return '\n'
	}
	return eofByte
}

// Next consumes and returns the current byte. Consuming the '\n' sentinel
// loads the following line; at end of input it returns eofByte and consumes
// nothing.
func (c *cursor) Next() byte {
	if c.done {
		return eofByte
	}
	if c.pos < len(c.line) {
		b := c.line[c.pos]
		c.pos++
		return b
	}
	if !c.nl {
		c.done = true
		return eofByte
	}
	c.load()
	return '\n'
}

// Line returns the 1-based number of the current line.
func (c *cursor) Line() int {
	return c.lineNo
}

// Col returns the 0-based byte column of the next unconsumed byte.
func (c *cursor) Col() int {
	return c.pos
}

// Err reports a read failure other than normal end of input.
func (c *cursor) Err() error {
	return c.err
}
