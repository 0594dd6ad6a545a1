package diagfmt

import "github.com/fatih/color"

// Options configures human-readable output.
type Options struct {
	Color bool
}

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	messageStyle = color.New(color.Bold)
	gutterStyle  = color.New(color.FgBlue, color.Bold)
	kindStyle    = color.New(color.FgCyan)
)

// paint wraps s in the style's escape codes when coloring is on. The
// library's global NoColor detection still applies underneath, so
// NO_COLOR environments stay plain even when on is true.
func paint(c *color.Color, on bool, s string) string {
	if !on {
		return s
	}
	return c.Sprint(s)
}
