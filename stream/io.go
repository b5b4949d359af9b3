package stream

import (
	"io"

	"github.com/signadot/foa-format/go-foa/entity"
)

// EntityReader provides entities from a source (decoder, slice, etc.).
type EntityReader interface {
	NextEntity() (*entity.Entity, error)
}

// EntitySink receives entities (encoder, tree builder, etc.).
type EntitySink interface {
	WriteEntity(*entity.Entity) error
}

// Copy pipes entities from r into sink until io.EOF, returning the number
// copied.
func Copy(sink EntitySink, r EntityReader) (int, error) {
	n := 0
	for {
		ent, err := r.NextEntity()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := sink.WriteEntity(ent); err != nil {
			return n, err
		}
		n++
	}
}

// SliceReader replays a fixed entity sequence, for tests and snapshots.
type SliceReader struct {
	ents []entity.Entity
	at   int
}

// NewSliceReader creates an EntityReader over ents.
func NewSliceReader(ents []entity.Entity) *SliceReader {
	return &SliceReader{ents: ents}
}

func (r *SliceReader) NextEntity() (*entity.Entity, error) {
	if r.at >= len(r.ents) {
		return nil, io.EOF
	}
	ent := r.ents[r.at]
	r.at++
	return &ent, nil
}
