package ecomload

import (
	"errors"
)

// Sentinel errors for the failure kinds of an import.
// They are wrapped with context and can be matched with errors.Is().
//
// Example usage:
//
//	_, err := importer.Import(ctx, cfg)
//	if errors.Is(err, ecomload.ErrSourceFileNotFound) {
//	    // one of the CSV files is missing
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")

	// ErrDataDirNotFound indicates the data directory does not exist.
	ErrDataDirNotFound = errors.New("data directory not found")

	// ErrSourceFileNotFound indicates one of the source CSV files does not exist.
	ErrSourceFileNotFound = errors.New("missing CSV file")

	// ErrMalformedCSV indicates a CSV file could not be parsed into a table.
	ErrMalformedCSV = errors.New("malformed CSV")

	// ErrConnectionFailed indicates the database could not be opened.
	ErrConnectionFailed = errors.New("connection failed")
)

// ExitCodeForError returns the process exit code for an error.
// Returns ExitSuccess for nil, ExitUsageError for usage errors and
// ExitGeneralError for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrUsage) {
		return ExitUsageError
	}
	return ExitGeneralError
}
