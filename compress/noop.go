package compress

import "io"

// Noop passes data through uncompressed.
type Noop struct{}

func (Noop) Name() string { return "none" }

func (Noop) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (Noop) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
