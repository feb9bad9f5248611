package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// File describes a file to create with WriteFiles.
type File struct {
	Name    string
	Size    int
	ModTime time.Time
}

// WriteFiles creates files of the given size (filled with 'x') under dir
// and sets their modification times. Intermediate directories are created.
// It returns the full paths in the order given.
func WriteFiles(tb testing.TB, dir string, files ...File) []string {
	tb.Helper()

	paths := make([]string, len(files))
	for i, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("mkdir %s: %v", path, err)
		}
		data := make([]byte, f.Size)
		for j := range data {
			data[j] = 'x'
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			tb.Fatalf("write %s: %v", path, err)
		}
		if !f.ModTime.IsZero() {
			if err := os.Chtimes(path, f.ModTime, f.ModTime); err != nil {
				tb.Fatalf("chtimes %s: %v", path, err)
			}
		}
		paths[i] = path
	}
	return paths
}
