package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/shibukawa/extractfx/rewriter"
)

// SelftestCmd represents the selftest command
type SelftestCmd struct{}

// Run executes the built-in scenarios and prints a unified diff for every
// mismatch.
func (cmd *SelftestCmd) Run(ctx *Context) error {
	cases := rewriter.Corpus()
	failed := 0

	for _, c := range cases {
		got, err := rewriter.RewriteString(c.Input, c.Opts)

		switch {
		case c.WantErr:
			if err == nil {
				color.Red("FAIL %s: expected an error, got output", c.Name)
				failed++
				continue
			}
			if ctx.Verbose {
				color.Green("ok   %s (%v)", c.Name, err)
			}
		case err != nil:
			color.Red("FAIL %s: %v", c.Name, err)
			failed++
		case got != c.Expected():
			color.Red("FAIL %s", c.Name)
			want := c.Expected()
			edits := myers.ComputeEdits(span.URIFromPath(c.Name), want, got)
			fmt.Fprint(os.Stdout, gotextdiff.ToUnified("expected", "actual", want, edits))
			failed++
		default:
			if ctx.Verbose {
				color.Green("ok   %s", c.Name)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d cases", ErrSelfTestFailed, failed, len(cases))
	}
	if !ctx.Quiet {
		color.Green("Self test passed: %d cases", len(cases))
	}
	return nil
}
