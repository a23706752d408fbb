package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem provides structured, user-friendly output.
// It is safe for use from multiple goroutines.
type DiagnosticSystem struct {
	mu        sync.Mutex
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
	indent    int
}

// NewDiagnosticSystem creates a new diagnostic system
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		output:    os.Stdout,
		errorOut:  os.Stderr,
		indent:    0,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// SetOutput redirects regular and error output
func (d *DiagnosticSystem) SetOutput(out, errOut io.Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.output = out
	d.errorOut = errOut
}

// SetColors enables or disables colored level tags
func (d *DiagnosticSystem) SetColors(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.useColors = enabled
}

// SetShowTime toggles timestamps on leveled messages
func (d *DiagnosticSystem) SetShowTime(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.showTime = enabled
}

// Level returns the configured level
func (d *DiagnosticSystem) Level() DiagnosticLevel {
	return d.level
}

var levelColors = map[string][]color.Attribute{
	"ERROR":   {color.FgRed},
	"WARN":    {color.FgYellow},
	"INFO":    {color.FgBlue},
	"SUCCESS": {color.FgGreen},
	"VERBOSE": {color.FgHiBlack},
	"DEBUG":   {color.FgMagenta},
}

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage(d.errorOut, "ERROR", format, args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.writeMessage(d.output, "WARN", format, args...)
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "INFO", format, args...)
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "SUCCESS", format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage(d.output, "VERBOSE", format, args...)
	}
}

// Debug outputs debug messages (highest verbosity)
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticDebug {
		d.writeMessage(d.output, "DEBUG", format, args...)
	}
}

// Section creates a prominent section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		d.print(d.output, d.paint([]color.Attribute{color.FgCyan, color.Bold}, title)+"\n")
	}
}

// Subsection creates a subsection header
func (d *DiagnosticSystem) Subsection(title string) {
	if d.level >= DiagnosticInfo {
		d.print(d.output, "\n"+d.paint([]color.Attribute{color.FgBlue}, title+":")+"\n")
	}
}

// List outputs a bulleted list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.print(d.output, d.getIndent()+"- "+fmt.Sprintf(format, args...)+"\n")
	}
}

// Indent increases the indentation level
func (d *DiagnosticSystem) Indent() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.indent++
}

// Unindent decreases the indentation level
func (d *DiagnosticSystem) Unindent() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.indent > 0 {
		d.indent--
	}
}

// Summary outputs a final summary with statistics, keys sorted
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level < DiagnosticInfo {
		return
	}

	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("\n" + title + "\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "   %s: %v\n", key, stats[key])
	}
	b.WriteString("\n")
	d.print(d.output, b.String())
}

// writeMessage is the internal message writing function
func (d *DiagnosticSystem) writeMessage(writer io.Writer, level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	var output strings.Builder
	output.WriteString(d.getIndent())

	if d.showTime {
		output.WriteString(time.Now().Format("15:04:05 "))
	}

	output.WriteString(d.paint(levelColors[level], "["+level+"]"))
	output.WriteString(" ")
	output.WriteString(message)
	output.WriteString("\n")

	d.print(writer, output.String())
}

func (d *DiagnosticSystem) print(writer io.Writer, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(writer, text)
}

// paint colors text when colors are enabled
func (d *DiagnosticSystem) paint(attrs []color.Attribute, text string) string {
	if !d.useColors || len(attrs) == 0 {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// getIndent returns the current indentation string
func (d *DiagnosticSystem) getIndent() string {
	return strings.Repeat("  ", d.indent)
}

// shouldUseColors determines if colors should be used
func shouldUseColors() bool {
	// Check if NO_COLOR is set (standard)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if FORCE_COLOR is set
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Check if we have a terminal
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
