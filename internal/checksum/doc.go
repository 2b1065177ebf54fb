// Package checksum hashes source files as they are read.
//
// Every CSV file is hashed while it streams into the parser, so an import
// report can state exactly which bytes produced each table without reading
// the file twice.
//
// # Example Usage
//
//	r := checksum.NewReader(file)
//	frame, err := csvsource.Parse(r)
//	digest := r.Sum() // hex SHA-256 of everything read so far
//
// # Thread Safety
//
// A Reader is not safe for concurrent use.
package checksum
