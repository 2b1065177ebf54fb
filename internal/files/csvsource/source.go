// Package csvsource reads the source CSV files of an import into frames.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vvka-141/ecomload/internal/checksum"
	"github.com/vvka-141/ecomload/internal/files/filesystem"
	"github.com/vvka-141/ecomload/internal/frame"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// missingMarkers are the cell values read as NULL in every column.
var missingMarkers = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether a raw CSV cell is a missing-value marker.
func IsMissing(cell string) bool {
	_, ok := missingMarkers[cell]
	return ok
}

// Source loads CSV files from a data directory.
// Thread-Safety: safe for concurrent use if the provider is.
type Source struct {
	fs      filesystem.FileSystemProvider
	dataDir string
}

// New creates a Source reading from dataDir through fsProvider.
func New(fsProvider filesystem.FileSystemProvider, dataDir string) *Source {
	return &Source{fs: fsProvider, dataDir: dataDir}
}

// Path returns the resolved path of a source file.
func (s *Source) Path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

// File is a parsed source file.
type File struct {
	// Path is the resolved path the file was read from.
	Path string

	// Checksum is the hex SHA-256 of the raw file bytes.
	Checksum string

	// Frame holds the header and rows, in file order.
	Frame *frame.Frame
}

// Load reads filename into a frame whose columns are the CSV header, in order.
// Rows keep file order. A missing file yields an error wrapping both
// ecomload.ErrSourceFileNotFound and fs.ErrNotExist.
func (s *Source) Load(filename string) (*File, error) {
	path := s.Path(filename)

	rc, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ecomload.ErrSourceFileNotFound, path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer rc.Close()

	hashed := checksum.NewReader(rc)
	f, err := Parse(hashed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Path: path, Checksum: hashed.Sum(), Frame: f}, nil
}

// Parse reads CSV content into a frame. A leading byte order mark is removed.
// Short rows are padded with NULL; long rows, a missing header and duplicate
// header names are errors wrapping ecomload.ErrMalformedCSV.
func Parse(r io.Reader) (*frame.Frame, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no header row found", ecomload.ErrMalformedCSV)
		}
		return nil, fmt.Errorf("%w: failed to read header row: %w", ecomload.ErrMalformedCSV, err)
	}

	out, err := frame.New(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ecomload.ErrMalformedCSV, err)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ecomload.ErrMalformedCSV, err)
		}

		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: expected %d fields, saw %d",
				ecomload.ErrMalformedCSV, line, len(header), len(record))
		}

		row := make([]any, len(header))
		for i, cell := range record {
			if !IsMissing(cell) {
				row[i] = cell
			}
		}
		if err := out.Append(row); err != nil {
			return nil, err
		}
	}

	return out, nil
}
