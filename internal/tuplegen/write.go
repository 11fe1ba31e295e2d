package tuplegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes files to their paths under root,
// creating directories as needed.
func WriteFiles(root string, files []File) error {
	for _, f := range files {
		if err := writeFile(root, f.Path, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// WriteUnformatted writes the unformatted source held in e next to
// the file it was intended for, so that it can be inspected.
// The name has the ".go" suffix replaced by ".unformatted.go".
// It returns the path of the file written.
func WriteUnformatted(root string, e *FormatError) (string, error) {
	p := strings.TrimSuffix(e.Path, ".go") + ".unformatted.go"
	if err := writeFile(root, p, e.Source); err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(p)), nil
}

func writeFile(root, path string, content []byte) error {
	p := filepath.Join(root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(p), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(p, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
