package stream

import (
	"golang.org/x/text/encoding"

	"github.com/signadot/foa-format/go-foa/scan"
)

// Option configures Decoder/Encoder behavior.
type Option func(*opts)

type opts struct {
	policy  scan.Policy
	escape  bool
	charset encoding.Encoding // nil means UTF-8 bytes pass through
}

func defaultOpts() *opts {
	return &opts{
		policy: scan.DefaultPolicy,
		escape: true,
	}
}

// WithPolicy sets the growth policy for a decoder's owned scan buffer.
// It has no effect on decoders scanning a caller-supplied region.
func WithPolicy(p scan.Policy) Option {
	return func(o *opts) { o.policy = p }
}

// WithEscaping toggles %XX escaping of reserved characters in names and
// data values. Enabled by default; disabling it assumes values never
// contain reserved characters literally.
func WithEscaping(on bool) Option {
	return func(o *opts) { o.escape = on }
}

// WithCharset sets the byte-to-text codec for record text. The default
// (nil) treats input and output as UTF-8. Record framing is byte-oriented
// on 0x0A, so the charset must be ASCII-compatible.
func WithCharset(enc encoding.Encoding) Option {
	return func(o *opts) { o.charset = enc }
}
