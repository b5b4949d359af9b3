// Package compress provides stream codecs for reading and writing
// compressed documents, selected by name or by file suffix.
package compress

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

var ErrUnknownCodec = errors.New("unknown codec")

// A Codec wraps readers and writers of a compressed stream.
type Codec interface {
	Name() string
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var codecs = map[string]Codec{
	"none": Noop{},
	"gzip": Gzip{},
	"zstd": Zstd{},
	"s2":   S2{},
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// ForPath selects a codec from the path suffix, defaulting to Noop for
// unrecognized suffixes.
func ForPath(path string) Codec {
	switch filepath.Ext(path) {
	case ".gz":
		return Gzip{}
	case ".zst":
		return Zstd{}
	case ".s2":
		return S2{}
	}
	return Noop{}
}
