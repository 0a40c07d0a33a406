package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileEntry is one regular file found directly inside the target directory.
type FileEntry struct {
	Path string // dir joined with Name
	Name string // final path component
}

// ResolveDir returns the absolute directory to process: dir itself, or the
// process working directory when dir is empty.
func ResolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWorkingDir, err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDir, err)
	}
	return abs, nil
}

// ListFiles returns the regular files directly inside dir, sorted by name.
// Directories, symlinks and other special files are excluded, as are entries
// whose metadata cannot be read. Failing to read dir itself is an error.
func ListFiles(dir string) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListDir, dir, err)
	}

	files := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, FileEntry{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
		})
	}
	return files, nil
}
