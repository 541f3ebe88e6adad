package placeholder

import (
	"fmt"
	"io"
	"math"
)

func SizeKB(n int) int {
	return int(math.Round(float64(n) / 1024))
}

// Report prints the confirmation block for a finished run. paths is
// expected to hold the frontend path followed by the API path.
func Report(w io.Writer, paths []string, size int) error {
	if len(paths) != 2 {
		return fmt.Errorf("expected 2 output paths, got %d", len(paths))
	}
	_, err := fmt.Fprintf(w, "Placeholder image created successfully\n  Frontend: %s\n  API: %s\n  Size: %d KB\n",
		paths[0], paths[1], SizeKB(size))
	return err
}

// Run renders the default layout, writes it to both directories and
// reports the result to w.
func Run(w io.Writer, frontendDir, apiDir string) error {
	buf, err := Render(DefaultLayout())
	if err != nil {
		return err
	}
	paths, err := WriteAll(buf, FileName, frontendDir, apiDir)
	if err != nil {
		return err
	}
	return Report(w, paths, len(buf))
}
