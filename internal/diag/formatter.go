package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Andcool-Systems/Ultraviolet/internal/source"
)

// Formatter renders Diagnostics against loaded source text: the reported
// line is left-trimmed before printing, the caret run is exactly
// span.End-span.Start characters long, and the caret run is offset by the
// column minus the length of the trimmed-away prefix. Notes/Help are printed
// afterward as additive trailer lines.
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter that writes to os.Stderr.
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stderr}
}

// NewFormatterTo creates a Formatter writing to an arbitrary writer.
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// Format renders d against src to the formatter's configured writer.
func (f *Formatter) Format(d *Diagnostic, src *source.File) {
	fmt.Fprint(f.out, Render(d, src))
}

// Render renders d against src and returns the result as a string, for
// callers (such as the tests) that want the text without an io.Writer
// round-trip. Format writes this same text.
func Render(d *Diagnostic, src *source.File) string {
	var b strings.Builder

	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}
	if d.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", severity, d.Message)
	}

	if src != nil && d.Span.IsValid() {
		line, col := src.Position(d.Span.Start)
		name := src.Name
		if name == "" {
			name = "<input>"
		}
		fmt.Fprintf(&b, "  --> %s:%d:%d\n", name, line, col)

		lineContent := src.LineText(line)
		trimmed := strings.TrimLeft(lineContent, " \t")
		prefixLen := len(lineContent) - len(trimmed)

		lineNumStr := fmt.Sprintf("%d", line)
		gutter := strings.Repeat(" ", len(lineNumStr))

		fmt.Fprintf(&b, " %s |\n", gutter)
		fmt.Fprintf(&b, " %s | %s\n", lineNumStr, trimmed)

		caretOffset := col - 1 - prefixLen
		if caretOffset < 0 {
			caretOffset = 0
		}
		caretLen := d.Span.End - d.Span.Start
		if caretLen < 1 {
			caretLen = 1
		}
		fmt.Fprintf(&b, " %s | %s%s\n", gutter, strings.Repeat(" ", caretOffset), strings.Repeat("^", caretLen))
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&b, "  = note: %s\n", note.Message)
	}
	if d.Help != "" {
		fmt.Fprintf(&b, "  = help: %s\n", d.Help)
	}

	return b.String()
}
