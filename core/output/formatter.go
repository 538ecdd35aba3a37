// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"
	"strings"

	apperrors "agency-dash/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV is a spreadsheet export
	FormatCSV Format = "csv"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is a rendered-agnostic view of a calculation result
type Report struct {
	// Title names the calculation
	Title string

	// Headline is a one-sentence summary
	Headline string

	// Columns and Rows form the report table
	Columns []string
	Rows    [][]string

	// Notes are warnings or hints shown after the table
	Notes []string

	// Data is the structured result, used by the JSON formatter
	Data interface{}
}

// AddRow appends a table row
func (r *Report) AddRow(cells ...string) {
	r.Rows = append(r.Rows, cells)
}

// AddNote appends a note
func (r *Report) AddNote(note string) {
	r.Notes = append(r.Notes, note)
}

// Options tune formatter construction
type Options struct {
	// NoColor disables ANSI colors in CLI output
	NoColor bool
}

var registry = map[Format]func(Options) Formatter{
	FormatCLI:      func(o Options) Formatter { return &cliFormatter{noColor: o.NoColor} },
	FormatJSON:     func(Options) Formatter { return jsonFormatter{} },
	FormatCSV:      func(Options) Formatter { return csvFormatter{} },
	FormatMarkdown: func(Options) Formatter { return markdownFormatter{} },
}

// Formats lists the supported formats in sorted order.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for f := range registry {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Get returns the formatter for a format name.
func Get(name string, opts Options) (Formatter, error) {
	build, ok := registry[Format(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown output format %q (want one of %s)",
			name, strings.Join(Formats(), ", "))
	}
	return build(opts), nil
}

// Render writes report to w in the named format.
func Render(w io.Writer, name string, opts Options, report *Report) error {
	f, err := Get(name, opts)
	if err != nil {
		return err
	}
	return f.Render(w, report)
}
