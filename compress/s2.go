package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2 reads and writes S2 streams, a faster superset of Snappy.
type S2 struct{}

func (S2) Name() string { return "s2" }

func (S2) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

func (S2) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
