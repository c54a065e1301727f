package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := New([]string{"abc", "", "tab\there"}, 8)

	if doc.RowCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", doc.RowCount())
	}
	if doc.Raw(0) != "abc" {
		t.Errorf("expected raw %q, got %q", "abc", doc.Raw(0))
	}
	if doc.RenderedLen(1) != 0 {
		t.Errorf("empty row should have rendered length 0, got %d", doc.RenderedLen(1))
	}
	// "tab" + 5 spaces to the stop + "here"
	if doc.RenderedLen(2) != 12 {
		t.Errorf("expected rendered length 12, got %d", doc.RenderedLen(2))
	}
}

func TestEmptyDocument(t *testing.T) {
	doc := New(nil, 8)

	if doc.RowCount() != 0 {
		t.Errorf("expected 0 rows, got %d", doc.RowCount())
	}
	if doc.RenderedLen(0) != 0 {
		t.Errorf("row 0 of an empty document should report length 0, got %d", doc.RenderedLen(0))
	}
	if doc.Rendered(0) != nil {
		t.Error("row 0 of an empty document should have no rendered text")
	}
}

func TestRenderedLenPastEnd(t *testing.T) {
	doc := New([]string{"abc"}, 8)

	// The virtual past-end row and anything beyond it.
	if doc.RenderedLen(1) != 0 {
		t.Errorf("virtual row should report length 0, got %d", doc.RenderedLen(1))
	}
	if doc.RenderedLen(100) != 0 {
		t.Errorf("far past end should report length 0, got %d", doc.RenderedLen(100))
	}
	if doc.RenderedLen(-1) != 0 {
		t.Errorf("negative index should report length 0, got %d", doc.RenderedLen(-1))
	}
}

func TestLoadFromStringSource(t *testing.T) {
	doc, err := Load(StringSource{"one", "two"}, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", doc.RowCount())
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("first\nsecond\n\tthird\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(NewFileSource(path), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.RowCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", doc.RowCount())
	}
	if doc.Raw(2) != "\tthird" {
		t.Errorf("expected raw %q, got %q", "\tthird", doc.Raw(2))
	}
	if string(doc.Rendered(2)) != "        third" {
		t.Errorf("expected expanded tab, got %q", string(doc.Rendered(2)))
	}
}

func TestFileSourceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(NewFileSource(path), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.RowCount() != 0 {
		t.Errorf("empty file should yield zero rows, got %d", doc.RowCount())
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := Load(NewFileSource(filepath.Join(t.TempDir(), "nope.txt")), 8)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRebuild(t *testing.T) {
	doc := New([]string{"a\tb"}, 8)
	if doc.RenderedLen(0) != 9 {
		t.Fatalf("expected length 9 at tab stop 8, got %d", doc.RenderedLen(0))
	}

	narrow := doc.Rebuild(4)
	if narrow.RenderedLen(0) != 5 {
		t.Errorf("expected length 5 at tab stop 4, got %d", narrow.RenderedLen(0))
	}
	if narrow.Raw(0) != doc.Raw(0) {
		t.Error("rebuild should preserve raw text")
	}
	if doc.RenderedLen(0) != 9 {
		t.Error("rebuild should not mutate the original document")
	}
}

func TestRawLines(t *testing.T) {
	lines := []string{"x", "y\tz"}
	doc := New(lines, 8)

	got := doc.RawLines()
	if len(got) != 2 || got[0] != "x" || got[1] != "y\tz" {
		t.Errorf("RawLines = %v, want %v", got, lines)
	}
}
