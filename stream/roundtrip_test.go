package stream

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/foa-format/go-foa/entity"
)

// Any sequence the encoder can produce must decode back to the same
// (name, data, kind) triples. Line numbers are source-derived.
func TestRoundTrip(t *testing.T) {
	in := []entity.Entity{
		{Name: "doc", HasName: true, Kind: entity.StartObject},
		{Name: "title", HasName: true, Data: "a = b (really)", Kind: entity.Data},
		{Name: "tags", HasName: true, Kind: entity.StartArray},
		{Data: "x[0]", Kind: entity.Data},
		{Kind: entity.EndArray},
		{Name: "empty", HasName: true, Data: "", Kind: entity.Data},
		{Kind: entity.EndObject},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	n, err := Copy(enc, NewSliceReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(in) {
		t.Fatalf("copied %d entities, want %d", n, len(in))
	}

	got := readAll(t, NewDecoderBytes(buf.Bytes()))

	normalize := func(es []entity.Entity) []entity.Entity {
		out := make([]entity.Entity, len(es))
		for i, e := range es {
			e.Line = 0
			if e.Kind.Structural() {
				e.Data = string(e.Kind.Byte())
			}
			out[i] = e
		}
		return out
	}
	if diff := cmp.Diff(normalize(in), normalize(got)); diff != "" {
		t.Errorf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestCopyIntoEncoderFromDecoder(t *testing.T) {
	input := []byte("a = (\nb = 1\n)\n")
	var out bytes.Buffer
	if _, err := Copy(NewEncoder(&out), NewDecoderBytes(input)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), input) {
		t.Errorf("re-encoded output %q differs from input %q", out.Bytes(), input)
	}
}
