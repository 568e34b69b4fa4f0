// Package diagnostic renders parse and runtime errors against their
// originating source text: a header line, the offending source line,
// and a caret under the column the error starts at. It exists only
// for the CLI front-end; the core interpreter never formats its own
// errors this way.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/nutmeg-lang/nutmeg/internal/token"
)

// Spanner is implemented by any error that knows where in the source
// it occurred.
type Spanner interface {
	error
	SpanOf() token.Span
}

// Format renders a single error with a source excerpt and caret.
func Format(err error, source, filename string) string {
	var sb strings.Builder

	span, hasSpan := spanOf(err)

	if filename != "" {
		if hasSpan {
			fmt.Fprintf(&sb, "%s:%s: %s\n", filename, span.Start.String(), err.Error())
		} else {
			fmt.Fprintf(&sb, "%s: %s\n", filename, err.Error())
		}
	} else {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	if !hasSpan {
		return sb.String()
	}

	line := sourceLine(source, span.Start.Line)
	if line == "" {
		return sb.String()
	}

	prefix := fmt.Sprintf("%4d | ", span.Start.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(prefix)+span.Start.Column-1))
	sb.WriteString("^")
	sb.WriteString("\n")

	return sb.String()
}

// FormatAll renders every error in errs, each followed by a blank
// line, in the order errs lists them.
func FormatAll(errs []error, source, filename string) string {
	var sb strings.Builder
	for _, err := range errs {
		sb.WriteString(Format(err, source, filename))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatVerbose is Format plus a trailing line naming the error's
// concrete Go type and, if it carries one, its full Span (not just the
// start position) -- the detail the CLI's -v/--verbose flag asks for.
func FormatVerbose(err error, source, filename string) string {
	sb := strings.Builder{}
	sb.WriteString(Format(err, source, filename))
	fmt.Fprintf(&sb, "  (%T)", err)
	if span, ok := spanOf(err); ok {
		fmt.Fprintf(&sb, " span=%s-%s", span.Start.String(), span.End.String())
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatAllVerbose is FormatAll using FormatVerbose for each error.
func FormatAllVerbose(errs []error, source, filename string) string {
	var sb strings.Builder
	for _, err := range errs {
		sb.WriteString(FormatVerbose(err, source, filename))
		sb.WriteString("\n")
	}
	return sb.String()
}

// spanOf extracts a Span from err if it carries one, via the Spanner
// interface the lexer/parser/value error types all implement.
func spanOf(err error) (token.Span, bool) {
	if s, ok := err.(Spanner); ok {
		return s.SpanOf(), true
	}
	return token.Span{}, false
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
