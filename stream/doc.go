// Package stream provides pull-based FOA decoding and encoding.
//
// [Decoder.NextEntity] produces one [entity.Entity] per call, refilling and
// growing its scan buffer transparently when backed by an io.Reader, or
// scanning a caller-supplied byte region in place. [Encoder] writes the
// symmetric newline-delimited wire format. Neither validates nesting; that
// is left to consumers such as the ir package.
package stream
