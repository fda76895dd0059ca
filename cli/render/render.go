// Package render provides centralized output rendering for the prospector
// CLI.
//
// Format selection rules:
//   - If output is a TTY, default to table
//   - If output is not a TTY, default to json
//   - --format always overrides defaults
//   - Invalid formats are errors
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/prospector/types"
)

// Format represents an output format.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// Missing is rendered for a record value the platform did not return.
const Missing = "N/A"

// RequiredMark is rendered in the Required column of field tables.
const RequiredMark = "✓"

// ParseFormat parses a format string, returning an error for invalid
// formats.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	case "yaml":
		return FormatYAML, nil
	case "":
		return "", nil // Let caller decide default
	default:
		return "", fmt.Errorf("invalid format: %q (must be json, table, or yaml)", s)
	}
}

// Renderer handles output formatting.
type Renderer struct {
	format Format
	out    io.Writer
}

// NewRenderer creates a renderer from CLI context, applying the format
// selection rules.
func NewRenderer(c *cli.Context) (*Renderer, error) {
	format, err := ParseFormat(c.String("format"))
	if err != nil {
		return nil, err
	}

	if format == "" {
		if isTTY(os.Stdout) {
			format = FormatTable
		} else {
			format = FormatJSON
		}
	}

	return &Renderer{format: format, out: os.Stdout}, nil
}

// NewRendererWithWriter creates a renderer with a custom writer (for the
// wizard, which always renders tables, and for testing).
func NewRendererWithWriter(format Format, out io.Writer) *Renderer {
	return &Renderer{format: format, out: out}
}

// Format returns the selected output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Structured renders data as JSON or YAML per the selected format.
// Callers handle FormatTable themselves via Table/Records/Fields.
func (r *Renderer) Structured(data any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		return enc.Encode(data)
	default:
		return fmt.Errorf("unknown format: %s", r.format)
	}
}

// Table renders a header row and data rows as an aligned text table.
func (r *Renderer) Table(headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

// Records renders search records as a table with one column per requested
// field, in field order. Values the platform did not return render as
// Missing.
func (r *Renderer) Records(fields []string, records []map[string]any) error {
	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(fields))
		for j, field := range fields {
			row[j] = CellValue(record, field)
		}
		rows[i] = row
	}
	return r.Table(fields, rows)
}

// Fields renders field descriptors as the describe table.
func (r *Renderer) Fields(fields []types.FieldDescriptor) error {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		mark := ""
		if f.Required() {
			mark = RequiredMark
		}
		rows[i] = []string{f.Name, f.Type, mark}
	}
	return r.Table([]string{"Field Name", "Type", "Required"}, rows)
}

// CellValue formats one record value for table display.
func CellValue(record map[string]any, field string) string {
	v, ok := record[field]
	if !ok || v == nil {
		return Missing
	}
	return formatValue(v)
}

// formatValue renders a decoded JSON value as cell text.
// JSON numbers decode as float64; integral values print without the
// fractional part.
func formatValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%v", n)
	case bool:
		return fmt.Sprintf("%t", n)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isTTY returns true if the writer is a TTY.
func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
