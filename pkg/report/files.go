package report

import (
	"os"
	"path/filepath"

	errs "github.com/followdiff/followdiff/pkg/errors"
)

// BaseName is the fixed artifact name; the extension follows the format.
const BaseName = "not_following_back"

// Filename returns the artifact filename for a format.
func Filename(format string) string {
	return BaseName + "." + format
}

// WriteFiles writes each artifact into dir, overwriting prior contents.
// An empty dir means the working directory. Paths are returned in format
// order. A failed write aborts with a fatal OUTPUT_WRITE error.
func WriteFiles(dir string, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, Filename(format))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, errs.Wrap(errs.ErrCodeOutputWrite, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
