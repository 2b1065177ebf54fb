package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider gives read access to the data directory.
// Missing paths are reported with errors that satisfy errors.Is(err, fs.ErrNotExist).
type FileSystemProvider interface {
	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// Open opens the file at path for reading. The caller closes it.
	Open(path string) (io.ReadCloser, error)
}

// IsDir reports whether path exists and is a directory.
func IsDir(p FileSystemProvider, path string) (bool, error) {
	info, err := p.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
