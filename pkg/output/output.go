// Package output renders check results for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/procpreflight/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// FprintResult writes a check result with colored status to w.
// Detail lines are indented to align with the name.
func FprintResult(w io.Writer, r check.Result) {
	tag, color := "[OK]", green
	if !r.OK() {
		tag, color = "[FAIL]", red
	}
	_, _ = fmt.Fprintf(w, "%s%s%s %s\n", color, tag, reset, r.Name)

	indent := strings.Repeat(" ", len(tag)+1)
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok || strings.ContainsAny(label, " \t\"") {
		return s
	}
	return dim + label + ":" + reset + rest
}
