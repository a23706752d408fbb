package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/stratum/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	colors  bool
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
		colors:  !color.NoColor,
	}
}

// SetOutput redirects the reporter output
func (r *DiagnosticReporter) SetOutput(out io.Writer) {
	r.out = out
}

// SetColors enables or disables colored output
func (r *DiagnosticReporter) SetColors(enabled bool) {
	r.colors = enabled
}

// ReportWarning prints a single warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	fmt.Fprintf(r.out, "%s%s\n", r.paint("! ", color.FgYellow, color.Bold), message)
}

// ReportError prints an error with its code, location, context and suggestions.
// A MultipleErrors value is reported entry by entry.
func (r *DiagnosticReporter) ReportError(err error) {
	if err == nil {
		return
	}

	var multi *errors.MultipleErrors
	if errors.As(err, &multi) {
		for _, e := range multi.Errors {
			r.ReportError(e)
		}
		return
	}

	var se errors.StratumError
	if !errors.As(err, &se) {
		fmt.Fprintf(r.out, "%s %s\n", r.paint("error:", color.FgRed, color.Bold), err.Error())
		return
	}

	fmt.Fprintf(r.out, "%s %s\n", r.paint(fmt.Sprintf("error[%s]:", se.ErrorCode()), color.FgRed, color.Bold), se.Error())

	if r.verbose {
		if cause := se.Unwrap(); cause != nil {
			fmt.Fprintf(r.out, "   Cause: %s\n", cause.Error())
		}
		r.printContext(se.Context())
	}

	r.printSuggestions(se.Suggestions())
}

// printContext prints context information sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	if len(context) == 0 {
		return
	}

	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), context[key])
	}
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	for _, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %s %s\n", r.paint("hint:", color.FgCyan), suggestion)
	}
}

func (r *DiagnosticReporter) paint(text string, attrs ...color.Attribute) string {
	if !r.colors {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}
