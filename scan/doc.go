// Package scan implements the byte-level engine behind the FOA decoder: a
// mutable scan buffer that frames newline-delimited records without copying,
// over either a caller-supplied (borrowed) region or an owned region grown
// on demand under a [Policy].
//
// A record is only ever surfaced once its terminating newline has been
// observed, so partial lines split across fills are never mis-framed.
package scan
