package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCSV drops a CSV fixture into a temp dir and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestLoadPreservesOrderAndLength(t *testing.T) {
	p := writeCSV(t, "scale.csv", "services,checks_per_sec\n10,50\n100,400\n1000,3000\n")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := d.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if got := d.Path(); got != p {
		t.Fatalf("Path = %q, want %q", got, p)
	}
	svcs, err := d.Column("services")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	want := []float64{10, 100, 1000}
	for i, v := range want {
		if svcs[i] != v {
			t.Fatalf("services[%d] = %v, want %v", i, svcs[i], v)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error %T is not *NotFoundError: %v", err, err)
	}
}

func TestLoadEmptyFileIsFormatError(t *testing.T) {
	p := writeCSV(t, "empty.csv", "")
	_, err := Load(p)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error %T is not *FormatError: %v", err, err)
	}
}

func TestLoadRaggedRowIsFormatError(t *testing.T) {
	p := writeCSV(t, "ragged.csv", "services,checks_per_sec\n10,50\n100\n")
	_, err := Load(p)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error %T is not *FormatError: %v", err, err)
	}
}

func TestColumnMissingIsFormatError(t *testing.T) {
	p := writeCSV(t, "scale.csv", "services,checks_per_sec\n10,50\n")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = d.Column("startup_ms")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error %T is not *FormatError: %v", err, err)
	}
}

func TestColumnNonNumericIsConversionError(t *testing.T) {
	p := writeCSV(t, "scale.csv", "services,checks_per_sec\n10,50\n100,n/a\n")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	vals, err := d.Column("checks_per_sec")
	if vals != nil {
		t.Fatalf("expected no partial result, got %v", vals)
	}
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not *ConversionError: %v", err, err)
	}
	if ce.Column != "checks_per_sec" || ce.Row != 1 || ce.Value != "n/a" {
		t.Fatalf("unexpected error detail: %+v", ce)
	}
}

func TestColumnScaledAppliesFactor(t *testing.T) {
	p := writeCSV(t, "mem.csv", "services,mem_rss_kb\n10,1024\n100,2048\n")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	mb, err := d.ColumnScaled("mem_rss_kb", 1.0/1024)
	if err != nil {
		t.Fatalf("ColumnScaled: %v", err)
	}
	if mb[0] != 1 || mb[1] != 2 {
		t.Fatalf("scaled values = %v, want [1 2]", mb)
	}
}

func TestColumnTrimsWhitespace(t *testing.T) {
	p := writeCSV(t, "ws.csv", "services,startup_ms\n10, 42\n")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ms, err := d.Column("startup_ms")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if ms[0] != 42 {
		t.Fatalf("startup_ms[0] = %v, want 42", ms[0])
	}
}
