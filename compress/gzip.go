package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip reads and writes RFC 1952 gzip streams.
type Gzip struct{}

func (Gzip) Name() string { return "gzip" }

func (Gzip) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (Gzip) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
