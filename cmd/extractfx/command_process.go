package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shibukawa/extractfx"
	"github.com/shibukawa/extractfx/rewriter"
)

// ProcessCmd represents the process command
type ProcessCmd struct {
	Input          string `arg:"" optional:"" help:"Input file or directory (default: stdin)"`
	Output         string `arg:"" optional:"" help:"Output file (default: stdout)"`
	Function       string `help:"Call name wrapped around f literal arguments; a trailing '*' becomes the argument count" short:"f"`
	LineDirectives bool   `help:"Emit #line markers pointing back at the original source" short:"l"`
}

// Run executes the process command
func (cmd *ProcessCmd) Run(ctx *Context) error {
	config, err := extractfx.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := rewriter.Options{
		FunctionName:   config.FunctionName,
		LineDirectives: config.LineDirectives,
	}
	if cmd.Function != "" {
		opts.FunctionName = cmd.Function
	}
	if cmd.LineDirectives {
		opts.LineDirectives = true
	}

	// Filter mode: stdin to stdout.
	if cmd.Input == "" {
		opts.SourcePath = "<stdin>"
		return rewrite(os.Stdout, os.Stdin, opts)
	}

	info, err := os.Stat(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	if info.IsDir() {
		if cmd.Output != "" {
			return ErrOutputIntoDirectory
		}
		return cmd.runDir(ctx, config, opts)
	}

	opts.SourcePath = cmd.Input
	in, err := os.Open(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	if cmd.Output == "" {
		return rewrite(os.Stdout, in, opts)
	}
	if err := rewriteFile(in, cmd.Output, opts); err != nil {
		return err
	}
	if ctx.Verbose {
		color.Green("Rewrote %s into %s", cmd.Input, cmd.Output)
	}
	return nil
}

// runDir rewrites every file carrying a configured extension under the
// input directory in place.
func (cmd *ProcessCmd) runDir(ctx *Context, config *extractfx.Config, opts rewriter.Options) error {
	processed := 0
	err := filepath.WalkDir(cmd.Input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExtension(path, config.Extensions) {
			return nil
		}
		if ctx.Verbose {
			color.Blue("Rewriting %s", path)
		}
		if err := rewriteInPlace(path, opts); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		processed++
		return nil
	})
	if err != nil {
		return err
	}
	if !ctx.Quiet {
		color.Green("Rewrote %d file(s)", processed)
	}
	return nil
}

func rewrite(w io.Writer, r io.Reader, opts rewriter.Options) error {
	return rewriter.New(w, r, opts).Process()
}

// rewriteFile writes into a temporary file next to the final location and
// renames it over, so a failed rewrite never leaves a truncated output.
func rewriteFile(in io.Reader, output string, opts rewriter.Options) error {
	tmp := filepath.Join(filepath.Dir(output), "."+filepath.Base(output)+"."+uuid.NewString()+".tmp")
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := rewrite(out, in, opts); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, output)
}

func rewriteInPlace(path string, opts rewriter.Options) error {
	opts.SourcePath = path
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	return rewriteFile(in, path, opts)
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
