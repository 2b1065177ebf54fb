// Package files groups the file-reading side of an import into sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - csvsource: Reads source CSV files into frames, hashing them as they stream
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/ecomload/internal/files/csvsource"
//	    "github.com/vvka-141/ecomload/internal/files/filesystem"
//	)
//
//	source := csvsource.New(filesystem.NewOSFileSystem(), "data")
//	file, err := source.Load("orders.csv")
package files
