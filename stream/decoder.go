package stream

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/signadot/foa-format/go-foa/entity"
	"github.com/signadot/foa-format/go-foa/scan"
)

// Decoder produces entities on demand from a byte stream or a fixed byte
// region. A Decoder owns exactly one scan buffer and must not be used from
// multiple goroutines without external synchronization.
type Decoder struct {
	buf     *scan.Buffer
	src     source
	opt     *opts
	charDec *encoding.Decoder
}

// NewDecoder creates a Decoder reading from r into an owned scan buffer
// governed by the configured growth policy.
func NewDecoder(r io.Reader, options ...Option) (*Decoder, error) {
	opt := defaultOpts()
	for _, o := range options {
		o(opt)
	}
	buf, err := scan.NewOwned(opt.policy)
	if err != nil {
		return nil, err
	}
	d := &Decoder{buf: buf, src: &readerSource{r: r}, opt: opt}
	d.resetCharset()
	return d, nil
}

// NewDecoderBytes creates a Decoder scanning data in place. The region is
// borrowed: never copied, refilled, or grown, and exhausting it without a
// trailing terminator is end of input, not an error.
func NewDecoderBytes(data []byte, options ...Option) *Decoder {
	opt := defaultOpts()
	for _, o := range options {
		o(opt)
	}
	d := &Decoder{buf: scan.NewBorrowed(data), src: fixedSource{}, opt: opt}
	d.resetCharset()
	return d
}

// NextEntity returns the next entity, io.EOF at end of input, or
// scan.ErrBufferLimit when a record cannot be made to fit under a finite
// policy max. Returned entities are copied out of the scan buffer and may
// be retained across calls. A record is only emitted once its terminating
// newline has been observed; an unterminated trailing line is dropped.
func (d *Decoder) NextEntity() (*entity.Entity, error) {
	for {
		if d.buf.FindNext() {
			return d.decodeSpan(d.buf.Span(), d.buf.Line())
		}
		n, err := d.src.refill(d.buf)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, io.EOF
		}
	}
}

// Line returns the source line of the most recently decoded entity.
func (d *Decoder) Line() int {
	return d.buf.Line()
}

// BufferCap returns the current size of the scan buffer in bytes.
func (d *Decoder) BufferCap() int {
	return d.buf.Cap()
}

// SetPolicy swaps the growth policy on a live decoder. The scan buffer is
// never shrunk below bytes currently pending.
func (d *Decoder) SetPolicy(p scan.Policy) error {
	if err := d.buf.SetPolicy(p); err != nil {
		return err
	}
	d.opt.policy = p
	return nil
}

// Reset reattaches the decoder to a new byte stream, discarding all scan
// state. The owned buffer is reused when the previous source was also a
// stream; otherwise a fresh one is allocated per the policy.
func (d *Decoder) Reset(r io.Reader, options ...Option) error {
	for _, o := range options {
		o(d.opt)
	}
	if d.buf.Mode() == scan.Owned {
		d.buf.Reset()
		if err := d.buf.SetPolicy(d.opt.policy); err != nil {
			return err
		}
	} else {
		buf, err := scan.NewOwned(d.opt.policy)
		if err != nil {
			return err
		}
		d.buf = buf
	}
	d.src = &readerSource{r: r}
	d.resetCharset()
	return nil
}

// ResetBytes reattaches the decoder to a fixed byte region, discarding the
// previously owned buffer if any.
func (d *Decoder) ResetBytes(data []byte, options ...Option) {
	for _, o := range options {
		o(d.opt)
	}
	d.buf = scan.NewBorrowed(data)
	d.src = fixedSource{}
	d.resetCharset()
}

func (d *Decoder) resetCharset() {
	if d.opt.charset == nil {
		d.charDec = nil
		return
	}
	d.charDec = d.opt.charset.NewDecoder()
}

func (d *Decoder) decodeSpan(raw []byte, line int) (*entity.Entity, error) {
	var text string
	if d.charDec == nil {
		text = string(raw)
	} else {
		decoded, err := d.charDec.Bytes(raw)
		if err != nil {
			return nil, err
		}
		text = string(decoded)
	}
	e := entity.Classify(text, line, d.opt.escape)
	return &e, nil
}
