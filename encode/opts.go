package encode

type EncodeOption func(*encState)

// WithIndent sets the number of spaces per nesting level (default 2).
func WithIndent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// WithColors enables colored output.
func WithColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}

// WithEscaping toggles %XX escaping of reserved characters in the output.
// Enabled by default; disable only for display of content known to be free
// of reserved characters.
func WithEscaping(on bool) EncodeOption {
	return func(es *encState) { es.escape = on }
}
