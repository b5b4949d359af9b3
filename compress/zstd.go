package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd reads and writes Zstandard streams.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}

func (Zstd) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}
