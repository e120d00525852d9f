package cmd

import (
	"io"

	"github.com/fatih/color"

	"codedoc/pkg/convert"
)

// newProgressPrinter returns a ProgressFunc that prints one "[N/total] name"
// line per processed file, colored when the destination is a terminal.
func newProgressPrinter(w io.Writer, isTTY bool) convert.ProgressFunc {
	line := color.New(color.FgCyan)
	if !isTTY {
		line.DisableColor()
	}
	return func(index, total int, name string) error {
		if _, err := line.Fprintf(w, "  [%d/%d] %s\n", index, total, name); err != nil {
			return err
		}
		return nil
	}
}
