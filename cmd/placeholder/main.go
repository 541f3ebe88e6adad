package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/abaddouh/placeholder/internal/placeholder"
)

func main() {
	root, err := repoRoot()
	if err != nil {
		log.Fatalf("Error locating repository root: %v", err)
	}

	frontendDir := filepath.Join(root, "client", "public")
	apiDir := filepath.Join(root, "output")

	if err := placeholder.Run(os.Stdout, frontendDir, apiDir); err != nil {
		log.Fatalf("Error creating placeholder image: %v", err)
	}
}

// repoRoot resolves two levels up from this source file, so output lands
// in the same place no matter where the binary is invoked from.
func repoRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to determine source file location")
	}
	return rootFromSource(file)
}

// rootFromSource needs an absolute path. Binaries built with -trimpath only
// record module-relative paths, which would resolve against the working
// directory.
func rootFromSource(file string) (string, error) {
	if !filepath.IsAbs(file) {
		return "", fmt.Errorf("source path %q is not absolute (built with -trimpath?); run from a source checkout", file)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..")), nil
}
