package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testSummary struct {
	RunID   string   `json:"run-id" yaml:"run-id"`
	Hosts   int      `json:"hosts" yaml:"hosts"`
	Targets []string `json:"targets" yaml:"targets"`
}

func testData() testSummary {
	return testSummary{
		RunID:   "run-1",
		Hosts:   2,
		Targets: []string{"a", "b"},
	}
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	if err := w.Serialize(context.Background(), testData()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got testSummary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.RunID != "run-1" || got.Hosts != 2 {
		t.Errorf("round-trip = %+v", got)
	}
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	if err := w.Serialize(context.Background(), testData()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got testSummary
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got.RunID != "run-1" || len(got.Targets) != 2 {
		t.Errorf("round-trip = %+v", got)
	}
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(context.Background(), testData()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "RunID", "run-1", "Targets.[0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestNewWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(context.Background(), testData()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("unknown format should fall back to JSON, got %q", buf.String())
	}
}

func TestFormatIsUnknown(t *testing.T) {
	for _, name := range SupportedFormats() {
		if Format(name).IsUnknown() {
			t.Errorf("%s should be known", name)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	if err := w.Serialize(context.Background(), testData()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Close is safe to repeat.
	_ = w.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !json.Valid(b) {
		t.Errorf("file content is not JSON: %q", string(b))
	}
}
