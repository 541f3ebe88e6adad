package placeholder

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents. An existing directory is
// left untouched.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteAll writes buf as fileName into every dir and returns the absolute
// paths in the same order. All directories are prepared before the first
// write. A failed write leaves earlier files in place.
func WriteAll(buf []byte, fileName string, dirs ...string) ([]string, error) {
	for _, dir := range dirs {
		if err := EnsureDir(dir); err != nil {
			return nil, err
		}
	}

	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		path, err := filepath.Abs(filepath.Join(dir, fileName))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve output path in %s: %w", dir, err)
		}
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
