package cache

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestExportImport_Roundtrip(t *testing.T) {
	src := NewMemory()
	src.Set("english:running", "run")
	src.Set("english:jumping", "jump")
	src.Set("spanish:felicidad", "felic")

	var buf bytes.Buffer
	if err := Export(src, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := NewMemory()
	result, err := Import(dst, &buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 3 {
		t.Errorf("Imported = %d, want 3", result.Imported)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}

	for key, want := range src.Entries() {
		if got, ok := dst.Get(key); !ok || got != want {
			t.Errorf("dst[%q] = %q (found=%v), want %q", key, got, ok, want)
		}
	}
}

func TestExport_Format(t *testing.T) {
	c := NewMemory()
	c.Set("english:running", "run")

	var buf bytes.Buffer
	if err := Export(c, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if snap.Version != "1" {
		t.Errorf("Version = %q, want %q", snap.Version, "1")
	}
	if snap.ExportedAt == "" {
		t.Error("ExportedAt should be set")
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(snap.Entries))
	}
	if snap.Entries[0].Key != "english:running" || snap.Entries[0].Root != "run" {
		t.Errorf("unexpected entry: %+v", snap.Entries[0])
	}
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(NewMemory(), &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := NewMemory()
	result, err := Import(dst, &buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 0 || dst.Len() != 0 {
		t.Errorf("expected empty roundtrip, imported %d, len %d", result.Imported, dst.Len())
	}
}

func TestImport_InvalidJSON(t *testing.T) {
	dst := NewMemory()
	if _, err := Import(dst, strings.NewReader("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestExportImportFile(t *testing.T) {
	src := NewMemory()
	src.Set("english:testing", "test")

	path := t.TempDir() + "/stemcache.json"
	if err := ExportToFile(src, path); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	dst := NewMemory()
	result, err := ImportFromFile(dst, path)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if got, ok := dst.Get("english:testing"); !ok || got != "test" {
		t.Errorf("dst entry = %q (found=%v), want %q", got, ok, "test")
	}
}
