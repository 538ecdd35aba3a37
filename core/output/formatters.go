package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"agency-dash/core/ui"
)

type cliFormatter struct {
	noColor bool
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, report *Report) error {
	out := ui.NewWriter(w, f.noColor)
	out.Header(report.Title)
	if report.Headline != "" {
		out.Success("%s", report.Headline)
		out.Println("")
	}
	if len(report.Columns) > 0 && len(report.Rows) > 0 {
		table := out.NewTable(report.Columns...)
		for _, row := range report.Rows {
			table.AddRow(row...)
		}
		table.Render()
	}
	for _, note := range report.Notes {
		out.Warning("%s", note)
	}
	return out.Err()
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if report.Data != nil {
		return enc.Encode(report.Data)
	}
	return enc.Encode(map[string]interface{}{
		"title":   report.Title,
		"columns": report.Columns,
		"rows":    report.Rows,
	})
}

type csvFormatter struct{}

func (csvFormatter) Format() Format { return FormatCSV }

func (csvFormatter) Render(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(report.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(report.Rows); err != nil {
		return err
	}
	return cw.Error()
}

type markdownFormatter struct{}

func (markdownFormatter) Format() Format { return FormatMarkdown }

func (markdownFormatter) Render(w io.Writer, report *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", report.Title)
	if report.Headline != "" {
		fmt.Fprintf(&b, "%s\n\n", report.Headline)
	}
	if len(report.Columns) > 0 && len(report.Rows) > 0 {
		b.WriteString("| " + strings.Join(escapeCells(report.Columns), " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(report.Columns)) + "\n")
		for _, row := range report.Rows {
			b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
		}
		b.WriteString("\n")
	}
	for _, note := range report.Notes {
		fmt.Fprintf(&b, "> %s\n", note)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeCells(cells []string) []string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return escaped
}
