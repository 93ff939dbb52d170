package registry

import (
	"os"
	"time"
)

type Source interface {
	// Version identifies the revision of the document, e.g. a modification time.
	Version() (time.Time, error)
	Read() ([]byte, error)
	Name() string
}

// FileSource reads the registry document from disk and uses the file's
// modification time as its version.
type FileSource struct {
	Path string
}

func (s *FileSource) Version() (time.Time, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (s *FileSource) Read() ([]byte, error) {
	return os.ReadFile(s.Path)
}

func (s *FileSource) Name() string {
	return s.Path
}
