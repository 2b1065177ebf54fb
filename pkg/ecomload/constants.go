package ecomload

import "time"

// Exit codes. Every load failure (missing directory, missing CSV, constraint
// violation) maps to ExitGeneralError; only CLI misuse and panics differ.
const (
	ExitSuccess      = 0 // Import completed successfully
	ExitGeneralError = 1 // Import failed
	ExitUsageError   = 2 // CLI usage error (unexpected args, invalid flags)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

const (
	// DefaultDataDir is the directory holding the five source CSV files,
	// resolved against the working directory.
	DefaultDataDir = "data"

	// DefaultDatabasePath is the SQLite file written when no other target is given.
	DefaultDatabasePath = "ecommerce.db"

	// DefaultTimeout bounds a whole import run. Zero means no timeout.
	DefaultTimeout time.Duration = 0

	// MaxErrorPreviewLength caps how much of a failing statement is echoed back
	// in error messages.
	MaxErrorPreviewLength = 200
)
