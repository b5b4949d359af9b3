package stream

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/signadot/foa-format/go-foa/entity"
)

// ErrKind reports a structural write with a non-structural kind.
var ErrKind = fmt.Errorf("kind is not structural")

// Encoder writes entities in wire format, one record per line. Its output
// decodes back to the same (name, data, kind) sequence.
type Encoder struct {
	w       io.Writer
	offset  int64
	opt     *opts
	charEnc *encoding.Encoder
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, options ...Option) *Encoder {
	opt := defaultOpts()
	for _, o := range options {
		o(opt)
	}
	e := &Encoder{w: w, opt: opt}
	e.resetCharset()
	return e
}

// WriteData writes an unnamed data record.
func (e *Encoder) WriteData(value string) error {
	return e.writeLine("", false, value, entity.Data)
}

// WriteNamedData writes a "name = value" data record.
func (e *Encoder) WriteNamedData(name, value string) error {
	return e.writeLine(name, true, value, entity.Data)
}

// WriteStructural writes an unnamed structural marker.
func (e *Encoder) WriteStructural(k entity.Kind) error {
	if !k.Structural() {
		return fmt.Errorf("%w: %s", ErrKind, k)
	}
	return e.writeLine("", false, string(k.Byte()), k)
}

// WriteNamedStructural writes a "name = marker" structural record, e.g.
// "obj = (".
func (e *Encoder) WriteNamedStructural(name string, k entity.Kind) error {
	if !k.Structural() {
		return fmt.Errorf("%w: %s", ErrKind, k)
	}
	return e.writeLine(name, true, string(k.Byte()), k)
}

// WriteEntity writes ent in wire format, dispatching on its kind and name.
func (e *Encoder) WriteEntity(ent *entity.Entity) error {
	switch {
	case ent.Kind.Structural() && ent.HasName:
		return e.WriteNamedStructural(ent.Name, ent.Kind)
	case ent.Kind.Structural():
		return e.WriteStructural(ent.Kind)
	case ent.HasName:
		return e.WriteNamedData(ent.Name, ent.Data)
	default:
		return e.WriteData(ent.Data)
	}
}

// Offset returns the number of bytes written.
func (e *Encoder) Offset() int64 {
	return e.offset
}

// Reset redirects the encoder to a new writer, zeroing the offset.
func (e *Encoder) Reset(w io.Writer, options ...Option) {
	for _, o := range options {
		o(e.opt)
	}
	e.w = w
	e.offset = 0
	e.resetCharset()
}

func (e *Encoder) resetCharset() {
	if e.opt.charset == nil {
		e.charEnc = nil
		return
	}
	e.charEnc = e.opt.charset.NewEncoder()
}

func (e *Encoder) writeLine(name string, named bool, value string, k entity.Kind) error {
	var b strings.Builder
	if named {
		if e.opt.escape {
			name = entity.Escape(name)
		}
		b.WriteString(name)
		b.WriteString(" = ")
	}
	if k == entity.Data && e.opt.escape {
		value = entity.Escape(value)
	}
	b.WriteString(value)
	b.WriteByte('\n')
	return e.writeBytes([]byte(b.String()))
}

func (e *Encoder) writeBytes(data []byte) error {
	if e.charEnc != nil {
		encoded, err := e.charEnc.Bytes(data)
		if err != nil {
			return err
		}
		data = encoded
	}
	n, err := e.w.Write(data)
	e.offset += int64(n)
	return err
}
