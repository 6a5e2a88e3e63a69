package rewriter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCorpus(t *testing.T) {
	for _, tt := range Corpus() {
		t.Run(tt.Name, func(t *testing.T) {
			got, err := RewriteString(tt.Input, tt.Opts)
			if tt.WantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnexpectedEOF) || errors.Is(err, ErrMalformed),
					"error %v wraps neither sentinel", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.Expected(), got)
		})
	}
}

// Rewritten output must be a fixed point: a second pass over it changes
// nothing, since the placeholders it contains carry no f/x prefix.
func TestRewriteIsIdempotent(t *testing.T) {
	for _, tt := range Corpus() {
		if tt.WantErr {
			continue
		}
		t.Run(tt.Name, func(t *testing.T) {
			again, err := RewriteString(tt.Expected(), tt.Opts)
			assert.NoError(t, err)
			assert.Equal(t, tt.Expected(), again)
		})
	}
}

func TestTrailingNewlinePreserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		final bool
	}{
		{"with newline", "int a;\n", true},
		{"without newline", "int a;", false},
		{"rewrite with newline", `f"{a}"` + "\n", true},
		{"rewrite without newline", `f"{a}"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RewriteString(tt.input, Options{})
			assert.NoError(t, err)
			assert.Equal(t, tt.final, strings.HasSuffix(got, "\n"))
		})
	}
}

func TestFunctionNameOption(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		want string
	}{
		{"default", "", `std::format("{} {}", a, b)`},
		{"plain name", "my::fmt", `my::fmt("{} {}", a, b)`},
		{"count placeholder", "std::vformat*", `std::vformat2("{} {}", a, b)`},
		{"bare asterisk", "*", `2("{} {}", a, b)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RewriteString(`f"{a} {b}"`, Options{FunctionName: tt.fn})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineDirectives(t *testing.T) {
	opts := Options{LineDirectives: true, SourcePath: "test.cpp"}

	t.Run("f literal", func(t *testing.T) {
		got, err := RewriteString("int x = f\"{a}\";\n", opts)
		assert.NoError(t, err)
		want := "int x = std::format(" +
			"\n#line 1 \"test.cpp\"\n" + strings.Repeat(" ", 8) + "\"{}\", " +
			"\n#line 1 \"test.cpp\"\n" + strings.Repeat(" ", 11) + "a);\n"
		assert.Equal(t, want, got)
	})

	t.Run("x literal on second line", func(t *testing.T) {
		got, err := RewriteString("q\nint y = x\"{b}\"\n", opts)
		assert.NoError(t, err)
		want := "q\nint y = " +
			"\n#line 2 \"test.cpp\"\n" + strings.Repeat(" ", 8) + "\"{}\", " +
			"\n#line 2 \"test.cpp\"\n" + strings.Repeat(" ", 11) + "b\n"
		assert.Equal(t, want, got)
	})

	t.Run("suppressed in directives", func(t *testing.T) {
		got, err := RewriteString("#define F f\"{x}\"\n", opts)
		assert.NoError(t, err)
		assert.Equal(t, "#define F std::format(\"{}\", x)\n", got)
	})

	t.Run("off by default", func(t *testing.T) {
		got, err := RewriteString(`f"{a}"`, Options{SourcePath: "test.cpp"})
		assert.NoError(t, err)
		assert.Equal(t, `std::format("{}", a)`, got)
	})
}

func TestErrorsCarryLineNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		fragment string
	}{
		{"line end in field", "a\nf\"{3\n* 5}\"", ErrMalformed, "line 2"},
		{"single closing brace", `f"oops } here"`, ErrMalformed, "line 1"},
		{"unterminated literal", `foo "bar`, ErrUnexpectedEOF, "string literal"},
		{"unterminated comment", "/* foo", ErrUnexpectedEOF, "block comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RewriteString(tt.input, Options{})
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.Contains(t, err.Error(), tt.fragment)
		})
	}
}

// Output already flushed for completed lines survives a failure on a later
// line.
func TestFlushedOutputSurvivesErrors(t *testing.T) {
	var out bytes.Buffer
	err := New(&out, strings.NewReader("int a;\nint b;\nf\"{unclosed"), Options{}).Process()
	assert.Error(t, err)
	assert.Equal(t, "int a;\nint b;\n", out.String())
}

func TestProcessStreams(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, strings.NewReader(`auto s = x"v: {n}";`), Options{})
	assert.NoError(t, r.Process())
	assert.Equal(t, `auto s = "v: {}", n;`, out.String())
}
