package stream

import (
	"io"

	"github.com/signadot/foa-format/go-foa/scan"
)

// source is the refill capability behind a Decoder. Exactly one variant is
// selected at construction: fixedSource for caller-supplied regions,
// readerSource for owned buffers backed by an io.Reader.
type source interface {
	// refill makes more bytes available in b, growing it per policy when
	// a fill pass has consumed every free byte without surfacing a record
	// terminator. Zero bytes with io.EOF means the source is exhausted.
	refill(b *scan.Buffer) (int, error)
}

// fixedSource backs a decoder scanning a caller-supplied region, which is
// never refilled and never grown.
type fixedSource struct{}

func (fixedSource) refill(*scan.Buffer) (int, error) {
	return 0, io.EOF
}

// readerSource refills an owned buffer from an io.Reader. It performs at
// most one read per refill call and holds back a read error until the
// bytes delivered alongside it have been scanned.
type readerSource struct {
	r   io.Reader
	err error
}

func (s *readerSource) refill(b *scan.Buffer) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	// Compaction is an owned-buffer affair: a borrowed region belongs to
	// the caller and is only ever scanned, never rewritten.
	b.Compact()
	free := b.Free()
	if len(free) == 0 {
		if err := b.Grow(); err != nil {
			return 0, err
		}
		free = b.Free()
	}
	n, err := s.r.Read(free)
	b.Advance(n)
	if err == nil && n == 0 {
		err = io.EOF
	}
	if err != nil {
		s.err = err
		if n == 0 {
			return 0, err
		}
	}
	return n, nil
}
