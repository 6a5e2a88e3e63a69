package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	// Point at a config file that does not exist so defaults apply.
	return &Context{
		Config: filepath.Join(t.TempDir(), "extractfx.yaml"),
		Quiet:  true,
	}
}

func TestProcessCmdTwoFiles(t *testing.T) {
	tempDir := t.TempDir()
	input := filepath.Join(tempDir, "in.cpp")
	output := filepath.Join(tempDir, "out.cpp")
	assert.NoError(t, os.WriteFile(input, []byte("auto s = f\"{n}\";\n"), 0644))

	cmd := &ProcessCmd{Input: input, Output: output}
	assert.NoError(t, cmd.Run(testContext(t)))

	got, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "auto s = std::format(\"{}\", n);\n", string(got))

	// No temporary files left behind.
	entries, err := os.ReadDir(tempDir)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(entries))
}

func TestProcessCmdFunctionOverride(t *testing.T) {
	tempDir := t.TempDir()
	input := filepath.Join(tempDir, "in.cpp")
	output := filepath.Join(tempDir, "out.cpp")
	assert.NoError(t, os.WriteFile(input, []byte(`f"{a} {b}"`), 0644))

	cmd := &ProcessCmd{Input: input, Output: output, Function: "fmt*"}
	assert.NoError(t, cmd.Run(testContext(t)))

	got, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, `fmt2("{} {}", a, b)`, string(got))
}

func TestProcessCmdKeepsOutputOnError(t *testing.T) {
	tempDir := t.TempDir()
	input := filepath.Join(tempDir, "in.cpp")
	output := filepath.Join(tempDir, "out.cpp")
	assert.NoError(t, os.WriteFile(input, []byte("f\"{unclosed\n"), 0644))
	assert.NoError(t, os.WriteFile(output, []byte("previous contents\n"), 0644))

	cmd := &ProcessCmd{Input: input, Output: output}
	assert.Error(t, cmd.Run(testContext(t)))

	got, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "previous contents\n", string(got))
}

func TestProcessCmdDirectory(t *testing.T) {
	tempDir := t.TempDir()
	source := filepath.Join(tempDir, "a.cpp")
	other := filepath.Join(tempDir, "b.txt")
	assert.NoError(t, os.WriteFile(source, []byte(`x"{v}"`), 0644))
	assert.NoError(t, os.WriteFile(other, []byte(`x"{v}"`), 0644))

	ctx := &Context{Config: filepath.Join(tempDir, "extractfx.yaml"), Quiet: true}
	cmd := &ProcessCmd{Input: tempDir}
	assert.NoError(t, cmd.Run(ctx))

	got, err := os.ReadFile(source)
	assert.NoError(t, err)
	assert.Equal(t, `"{}", v`, string(got))

	// Files outside the configured extensions stay untouched.
	got, err = os.ReadFile(other)
	assert.NoError(t, err)
	assert.Equal(t, `x"{v}"`, string(got))
}

func TestProcessCmdDirectoryWithOutput(t *testing.T) {
	cmd := &ProcessCmd{Input: t.TempDir(), Output: "out.cpp"}
	err := cmd.Run(testContext(t))
	assert.IsError(t, err, ErrOutputIntoDirectory)
}

func TestSelftestCmd(t *testing.T) {
	cmd := &SelftestCmd{}
	assert.NoError(t, cmd.Run(&Context{Quiet: true}))
}

func TestHasExtension(t *testing.T) {
	exts := []string{".cpp", ".h"}
	assert.True(t, hasExtension("dir/a.cpp", exts))
	assert.True(t, hasExtension("a.h", exts))
	assert.False(t, hasExtension("a.hpp", exts))
	assert.False(t, hasExtension("cpp", exts))
}
