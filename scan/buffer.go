package scan

import "fmt"

// Mode says whether the byte region backing a Buffer is caller-supplied or
// owned by the buffer itself.
type Mode int

const (
	// Borrowed regions are fixed: never refilled, never reallocated.
	// Exhausting one without finding a terminator is end of input.
	Borrowed Mode = iota
	// Owned regions are allocated by the buffer and grown per Policy.
	Owned
)

func (m Mode) String() string {
	if m == Borrowed {
		return "Borrowed"
	}
	return "Owned"
}

// Buffer frames newline-delimited records over a mutable byte region. Four
// cursors track progress: start and end bound the record found by the last
// successful FindNext, fill is the high-water mark of valid bytes, and line
// is the 1-based source line of the current record.
//
// Invariant: 0 <= start <= end <= fill <= len(buf).
type Buffer struct {
	buf    []byte
	start  int
	end    int
	fill   int
	line   int
	mode   Mode
	policy Policy
}

// NewOwned allocates a growable buffer per p.
func NewOwned(p Policy) (*Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	size := p.Initial
	if !p.Unlimited() && size > p.Max {
		size = p.Max
	}
	return &Buffer{
		buf:    make([]byte, size),
		line:   1,
		mode:   Owned,
		policy: p,
	}, nil
}

// NewBorrowed wraps a caller-supplied region. The region is scanned in
// place and never copied, refilled, or resized.
func NewBorrowed(data []byte) *Buffer {
	return &Buffer{
		buf:  data,
		fill: len(data),
		line: 1,
		mode: Borrowed,
	}
}

func (b *Buffer) Mode() Mode { return b.mode }

// Line returns the 1-based source line of the record bounded by the last
// successful FindNext.
func (b *Buffer) Line() int { return b.line }

// Cap returns the size of the underlying region.
func (b *Buffer) Cap() int { return len(b.buf) }

// Pending returns the number of valid bytes not yet consumed by a record.
func (b *Buffer) Pending() int { return b.fill - b.end }

// Span returns the raw bytes of the current record. The slice aliases the
// scan region and is invalidated by Compact, Grow, and the next FindNext;
// callers must copy text out before then.
func (b *Buffer) Span() []byte { return b.buf[b.start:b.end] }

// FindNext locates the next complete record. Blank lines are consumed
// silently (they still advance the line count). It reports false when no
// terminated record is available, in which case no cursor state is
// committed, so the same bytes are rescanned after the next fill.
func (b *Buffer) FindNext() bool {
	pos, line := b.end, b.line
	for pos < b.fill && b.buf[pos] == '\n' {
		pos++
		line++
	}
	if pos == b.fill {
		return false
	}
	start := pos
	for pos < b.fill && b.buf[pos] != '\n' {
		pos++
	}
	if pos == b.fill {
		// Incomplete line: its terminator has not been observed yet.
		return false
	}
	b.start, b.end, b.line = start, pos, line
	return true
}

// Compact shifts the unconsumed tail down to offset 0, reclaiming space
// held by already-emitted records without reallocating.
func (b *Buffer) Compact() {
	if b.end == 0 {
		return
	}
	copy(b.buf, b.buf[b.end:b.fill])
	b.fill -= b.end
	b.start, b.end = 0, 0
}

// Free returns the writable tail of the region.
func (b *Buffer) Free() []byte { return b.buf[b.fill:] }

// Advance records n bytes written into Free.
func (b *Buffer) Advance(n int) { b.fill += n }

// Grow extends an owned region by the policy step, preserving valid bytes.
// It fails with ErrBufferLimit when any further growth would exceed a
// finite policy max.
func (b *Buffer) Grow() error {
	if b.mode != Owned {
		return ErrBorrowed
	}
	size := len(b.buf) + b.policy.Step
	if !b.policy.Unlimited() && size > b.policy.Max {
		size = b.policy.Max
		if size <= len(b.buf) {
			return fmt.Errorf("%w: record needs more than %d bytes", ErrBufferLimit, b.policy.Max)
		}
	}
	grown := make([]byte, size)
	copy(grown, b.buf[:b.fill])
	b.buf = grown
	return nil
}

// SetPolicy swaps the growth policy on a live buffer. The region is never
// shrunk, so a finite max below the current capacity is raised to the
// capacity: bytes already pending can always still be decoded.
func (b *Buffer) SetPolicy(p Policy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.Unlimited() && p.Max < len(b.buf) {
		p.Max = len(b.buf)
	}
	b.policy = p
	return nil
}

// Reset discards all cursor state, rearming the buffer for a new source of
// the same mode.
func (b *Buffer) Reset() {
	b.start, b.end, b.fill = 0, 0, 0
	b.line = 1
}
