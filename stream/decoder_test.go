package stream

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"

	"github.com/signadot/foa-format/go-foa/entity"
	"github.com/signadot/foa-format/go-foa/scan"
)

func readAll(t *testing.T, d *Decoder) []entity.Entity {
	t.Helper()
	var ents []entity.Entity
	for {
		ent, err := d.NextEntity()
		if err == io.EOF {
			return ents
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ents = append(ents, *ent)
	}
}

func TestDecodeObject(t *testing.T) {
	input := []byte("obj = (\nname = adam\nage = 24\n)\n")
	want := []entity.Entity{
		{Name: "obj", HasName: true, Data: "(", Kind: entity.StartObject, Line: 1},
		{Name: "name", HasName: true, Data: "adam", Kind: entity.Data, Line: 2},
		{Name: "age", HasName: true, Data: "24", Kind: entity.Data, Line: 3},
		{Data: ")", Kind: entity.EndObject, Line: 4},
	}

	t.Run("bytes", func(t *testing.T) {
		got := readAll(t, NewDecoderBytes(input))
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("mismatch (-want +got):\n%s", d)
		}
	})
	t.Run("reader", func(t *testing.T) {
		d, err := NewDecoder(bytes.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		got := readAll(t, d)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("mismatch (-want +got):\n%s", d)
		}
	})
}

func TestDecodeEscaped(t *testing.T) {
	input := []byte("a%28b%5Bc%5Dd%29e%3Df\n")

	got := readAll(t, NewDecoderBytes(input))
	want := []entity.Entity{{Data: "a(b[c]d)e=f", Kind: entity.Data, Line: 1}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("escaping enabled (-want +got):\n%s", d)
	}

	got = readAll(t, NewDecoderBytes(input, WithEscaping(false)))
	want = []entity.Entity{{Data: "a%28b%5Bc%5Dd%29e%3Df", Kind: entity.Data, Line: 1}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("escaping disabled (-want +got):\n%s", d)
	}
}

func TestDecodeBlankLines(t *testing.T) {
	input := []byte("\n\na = 1\n\n\nb = 2\n\n")
	got := readAll(t, NewDecoderBytes(input))
	want := []entity.Entity{
		{Name: "a", HasName: true, Data: "1", Kind: entity.Data, Line: 3},
		{Name: "b", HasName: true, Data: "2", Kind: entity.Data, Line: 6},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

// Feeding one byte at a time must yield the identical entity sequence as
// decoding the whole input at once.
func TestResumability(t *testing.T) {
	input := []byte("obj = (\nlist = [\nfirst\nsecond item\n]\nx = a%3Db\n)\n")

	whole := readAll(t, NewDecoderBytes(input))

	d, err := NewDecoder(iotest.OneByteReader(bytes.NewReader(input)),
		WithPolicy(scan.Policy{Initial: 2, Step: 3}))
	if err != nil {
		t.Fatal(err)
	}
	byByte := readAll(t, d)

	if diff := cmp.Diff(whole, byByte); diff != "" {
		t.Errorf("one-byte reads diverge (-whole +byByte):\n%s", diff)
	}
}

func TestGrowthCap(t *testing.T) {
	// The first record cannot fit under the finite max: fatal, never
	// silent truncation.
	input := strings.Repeat("x", 64) + "\nok\n"
	d, err := NewDecoder(strings.NewReader(input),
		WithPolicy(scan.Policy{Initial: 8, Step: 8, Max: 32}))
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.NextEntity()
	if !errors.Is(err, scan.ErrBufferLimit) {
		t.Fatalf("got %v, want ErrBufferLimit", err)
	}
}

func TestBorrowedNeverGrows(t *testing.T) {
	input := []byte("complete = yes\npartial with no terminator")
	d := NewDecoderBytes(input)

	ent, err := d.NextEntity()
	if err != nil {
		t.Fatal(err)
	}
	if ent.Name != "complete" || ent.Data != "yes" {
		t.Errorf("got %s", ent.Info())
	}
	capBefore := d.BufferCap()

	// The unterminated trailing line is never emitted.
	for i := 0; i < 3; i++ {
		if _, err := d.NextEntity(); err != io.EOF {
			t.Fatalf("call %d: got %v, want io.EOF", i, err)
		}
	}
	if d.BufferCap() != capBefore {
		t.Errorf("borrowed buffer resized: %d -> %d", capBefore, d.BufferCap())
	}
	if !bytes.Equal(input, []byte("complete = yes\npartial with no terminator")) {
		t.Error("borrowed region mutated")
	}
}

func TestBorrowedRegionReadOnly(t *testing.T) {
	input := []byte("obj = (\nname = adam\nage = 24\n)\n")
	pristine := append([]byte(nil), input...)

	first := readAll(t, NewDecoderBytes(input))
	if !bytes.Equal(input, pristine) {
		t.Fatalf("caller region rewritten during decode:\n%q", input)
	}
	// The same region decodes identically a second time.
	second := readAll(t, NewDecoderBytes(input))
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("second decode of same region differs (-first +second):\n%s", d)
	}
}

func TestOwnedTrailingLineDropped(t *testing.T) {
	d, err := NewDecoder(strings.NewReader("a = 1\nunterminated"))
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(t, d)
	want := []entity.Entity{{Name: "a", HasName: true, Data: "1", Kind: entity.Data, Line: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadErrorPropagates(t *testing.T) {
	broken := io.MultiReader(
		strings.NewReader("ok = 1\n"),
		iotest.ErrReader(errors.New("pipe burst")),
	)
	d, err := NewDecoder(broken)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.NextEntity(); err != nil {
		t.Fatalf("first entity: %v", err)
	}
	_, err = d.NextEntity()
	if err == nil || err == io.EOF {
		t.Fatalf("got %v, want read error", err)
	}
}

func TestDecoderCharset(t *testing.T) {
	// "café = ole" in ISO 8859-1: é is a single 0xE9 byte.
	raw := []byte{'c', 'a', 'f', 0xE9, ' ', '=', ' ', 'o', 'l', 0xE9, '\n'}
	d := NewDecoderBytes(raw, WithCharset(charmap.ISO8859_1))
	got := readAll(t, d)
	want := []entity.Entity{{Name: "café", HasName: true, Data: "olé", Kind: entity.Data, Line: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderReset(t *testing.T) {
	d, err := NewDecoder(strings.NewReader("a = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	first := readAll(t, d)
	if err := d.Reset(strings.NewReader("b = 2\n")); err != nil {
		t.Fatal(err)
	}
	second := readAll(t, d)

	if len(first) != 1 || first[0].Name != "a" {
		t.Errorf("first read: %+v", first)
	}
	if len(second) != 1 || second[0].Name != "b" || second[0].Line != 1 {
		t.Errorf("second read: %+v", second)
	}
}

func TestInvalidPolicy(t *testing.T) {
	_, err := NewDecoder(strings.NewReader(""), WithPolicy(scan.Policy{Initial: 0, Step: 4}))
	if !errors.Is(err, scan.ErrPolicy) {
		t.Errorf("got %v, want ErrPolicy", err)
	}
}
