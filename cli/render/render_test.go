package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/open-cli-collective/prospector/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TABLE", FormatTable, false},
		{"Yaml", FormatYAML, false},
		{"", "", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFormat(%q) accepted invalid format", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecords_MissingValuesRenderNA(t *testing.T) {
	var b strings.Builder
	r := NewRendererWithWriter(FormatTable, &b)

	records := []map[string]any{
		{"Id": "001", "Name": "Acme Corp"},
		{"Id": "002", "Name": nil},
		{"Id": "003"},
	}
	if err := r.Records([]string{"Id", "Name"}, records); err != nil {
		t.Fatalf("Records failed: %v", err)
	}

	out := b.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Id") || !strings.Contains(lines[0], "Name") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], Missing) {
		t.Errorf("nil value not rendered as %s: %q", Missing, lines[2])
	}
	if !strings.Contains(lines[3], Missing) {
		t.Errorf("absent value not rendered as %s: %q", Missing, lines[3])
	}
}

func TestFields_RequiredMark(t *testing.T) {
	var b strings.Builder
	r := NewRendererWithWriter(FormatTable, &b)

	fields := []types.FieldDescriptor{
		{Name: "Name", Type: "string", Nillable: false, Createable: true},
		{Name: "Phone", Type: "phone", Nillable: true, Createable: true},
	}
	if err := r.Fields(fields); err != nil {
		t.Fatalf("Fields failed: %v", err)
	}

	out := b.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.Contains(lines[1], RequiredMark) {
		t.Errorf("required field missing mark: %q", lines[1])
	}
	if strings.Contains(lines[2], RequiredMark) {
		t.Errorf("optional field carries mark: %q", lines[2])
	}
}

func TestStructured_JSON(t *testing.T) {
	var b strings.Builder
	r := NewRendererWithWriter(FormatJSON, &b)

	if err := r.Structured(map[string]string{"alias": "MyOrg"}); err != nil {
		t.Fatalf("Structured failed: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["alias"] != "MyOrg" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestStructured_YAML(t *testing.T) {
	var b strings.Builder
	r := NewRendererWithWriter(FormatYAML, &b)

	if err := r.Structured(map[string]string{"alias": "MyOrg"}); err != nil {
		t.Fatalf("Structured failed: %v", err)
	}
	if !strings.Contains(b.String(), "alias: MyOrg") {
		t.Errorf("output = %q", b.String())
	}
}

func TestCellValue_Formatting(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		field  string
		want   string
	}{
		{"string", map[string]any{"Name": "Acme"}, "Name", "Acme"},
		{"integral float", map[string]any{"Employees": float64(250)}, "Employees", "250"},
		{"fractional float", map[string]any{"Score": 4.5}, "Score", "4.5"},
		{"bool", map[string]any{"IsActive": true}, "IsActive", "true"},
		{"nil", map[string]any{"Phone": nil}, "Phone", Missing},
		{"absent", map[string]any{}, "Phone", Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellValue(tt.record, tt.field); got != tt.want {
				t.Errorf("CellValue(%s) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}
