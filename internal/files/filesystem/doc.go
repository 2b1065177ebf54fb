// Package filesystem provides the read-only filesystem abstraction used to
// locate and read source CSV files.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Both report missing paths with errors matching fs.ErrNotExist.
package filesystem
