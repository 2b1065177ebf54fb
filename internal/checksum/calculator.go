package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
)

// Reader hashes everything read through it with SHA-256.
type Reader struct {
	r    io.Reader
	hash hash.Hash
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, hash: sha256.New()}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.hash.Write(p[:n])
	}
	return n, err
}

// Sum returns the hex SHA-256 of the bytes read so far.
func (r *Reader) Sum() string {
	return hex.EncodeToString(r.hash.Sum(nil))
}

// Short abbreviates a hex digest for display.
func Short(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
