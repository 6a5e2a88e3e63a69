package rewriter

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCursorWalk(t *testing.T) {
	c := newCursor(strings.NewReader("ab\ncd"))
	var got []byte
	for {
		b := c.Next()
		if b == eofByte {
			break
		}
		got = append(got, b)
	}
	assert.Equal(t, "ab\ncd", string(got))
	assert.Equal(t, eofByte, byte(c.Next())) // terminal, repeatable
	assert.NoError(t, c.Err())
}

func TestCursorEmptyInput(t *testing.T) {
	c := newCursor(strings.NewReader(""))
	assert.Equal(t, eofByte, c.Peek())
	assert.Equal(t, eofByte, c.Next())
}

func TestCursorLineBoundarySentinels(t *testing.T) {
	t.Run("newline terminated", func(t *testing.T) {
		c := newCursor(strings.NewReader("a\nb\n"))
		c.Next() // a
		assert.Equal(t, byte('\n'), c.Peek())
		// Lookahead stops at the boundary instead of entering line two.
		assert.Equal(t, byte('\n'), c.PeekAt(1))
		assert.Equal(t, byte('\n'), c.PeekAt(7))
		assert.Equal(t, byte('\n'), c.Next())
		assert.Equal(t, byte('b'), c.Peek())
	})

	t.Run("final line without newline", func(t *testing.T) {
		c := newCursor(strings.NewReader("ab"))
		c.Next()
		c.Next()
		assert.Equal(t, eofByte, c.Peek())
		assert.Equal(t, eofByte, c.PeekAt(3))
	})
}

func TestCursorPositions(t *testing.T) {
	c := newCursor(strings.NewReader("ab\ncd\n"))
	assert.Equal(t, 1, c.Line())
	assert.Equal(t, 0, c.Col())
	c.Next()
	assert.Equal(t, 1, c.Col())
	c.Next()
	c.Next() // the newline
	assert.Equal(t, 2, c.Line())
	assert.Equal(t, 0, c.Col())
	assert.Equal(t, byte('c'), c.Peek())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errFailingReader
}

var errFailingReader = errors.New("read failed")

func TestCursorReadError(t *testing.T) {
	c := newCursor(failingReader{})
	assert.Equal(t, eofByte, c.Peek())
	assert.IsError(t, c.Err(), errFailingReader)
}
