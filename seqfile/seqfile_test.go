package seqfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sequence.txt")

	if err := Write(name, "ABAACD"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := Read(name)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "ABAACD" {
		t.Errorf("expected %q, got %q", "ABAACD", content)
	}
}

func TestRead_StripsWhitespace(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "padded.txt")

	if err := os.WriteFile(name, []byte("  01000110111\n\n"), 0666); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := Read(name)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "01000110111" {
		t.Errorf("expected %q, got %q", "01000110111", content)
	}
}

func TestRead_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the error to match fs.ErrNotExist, got %v", err)
	}
}

func TestWrite_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "nested", "deeper", "out.txt")

	if err := Write(name, "111110100"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := Read(name)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "111110100" {
		t.Errorf("expected %q, got %q", "111110100", content)
	}
}
