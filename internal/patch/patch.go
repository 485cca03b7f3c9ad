// Package patch splices lines into generated source files after fixed marker
// comments.
package patch

import (
	"bytes"
	"fmt"
	"os"

	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/fsutil"
)

// ErrMarkerNotFound is returned when the marker does not occur in the file.
var ErrMarkerNotFound = oerrors.Wrap(oerrors.ErrNotFound, "marker not found")

// Splice returns content with the first occurrence of marker replaced by
// marker, a newline and text. Later occurrences are left alone.
func Splice(content []byte, marker, text string) ([]byte, error) {
	m := []byte(marker)
	idx := bytes.Index(content, m)
	if idx < 0 {
		return nil, fmt.Errorf("%q: %w", marker, ErrMarkerNotFound)
	}

	end := idx + len(m)
	out := make([]byte, 0, len(content)+len(text)+1)
	out = append(out, content[:end]...)
	out = append(out, '\n')
	out = append(out, text...)
	out = append(out, content[end:]...)
	return out, nil
}

// Patch inserts text on the line after the first occurrence of marker in the
// file at path and writes the file back. Apart from the insertion the content
// and file mode are preserved. The file is not rewritten when the marker is
// missing. Each call inserts again; nothing is deduplicated.
func Patch(path, marker, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	patched, err := Splice(content, marker, text)
	if err != nil {
		return fmt.Errorf("patching %s: %w", path, err)
	}

	if err := fsutil.WriteFileAtomic(path, patched, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
