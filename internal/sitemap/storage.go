package sitemap

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the output seam for the generator. The backend is chosen at
// construction time; nothing swaps the handle after the generator exists.
type Storage interface {
	Write(name string, data []byte) (path string, err error)
}

// LocalStorage writes sitemap files to a directory on local disk, via a
// temp file and rename so readers never observe a half-written sitemap.
type LocalStorage struct {
	Dir string
}

func (s LocalStorage) Write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create sitemap dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, name+".tmp-")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}

	final := filepath.Join(s.Dir, name)
	if err := os.Rename(tmpName, final); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}

	return final, nil
}
