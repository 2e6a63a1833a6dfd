// Package seqfile reads and writes symbol sequences as plain text files.
//
// Sequences travel as raw text with no framing or escaping.  Read strips
// the whitespace surrounding the content; Write creates intermediate
// directories as needed.  An encoded sequence stored through this package
// is the literal '0'/'1' rendering of a bit string, never packed bits.
package seqfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Read returns the text content of the named file with leading and
// trailing whitespace stripped.  A missing file is reported distinctly
// from other failures: the returned error matches fs.ErrNotExist under
// errors.Is.
func Read(filename string) (string, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read sequence file %q: %w", filename, err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Write stores content as the text of the named file, creating
// intermediate directories as needed.
func Write(filename string, content string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	if err := os.WriteFile(filename, []byte(content), 0666); err != nil {
		return fmt.Errorf("write sequence file %q: %w", filename, err)
	}
	return nil
}
