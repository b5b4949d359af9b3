package convert

import (
	"encoding/json"
	"io"

	"github.com/signadot/foa-format/go-foa/ir"
)

// ToJSON writes nodes as JSON: a single tree as one value, several as an
// array.
func ToJSON(w io.Writer, nodes []*ir.Node) error {
	v, err := manyToAny(nodes)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FromJSON reads one JSON value and converts it to a document tree.
func FromJSON(r io.Reader) ([]*ir.Node, error) {
	var v any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return []*ir.Node{FromAny(normalizeNumbers(v))}, nil
}

func manyToAny(nodes []*ir.Node) (any, error) {
	if len(nodes) == 1 {
		return rootToAny(nodes[0])
	}
	vs := make([]any, 0, len(nodes))
	for _, n := range nodes {
		v, err := rootToAny(n)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// rootToAny keeps the name of a named root by wrapping its value in a
// single-entry map; ToAny itself leaves names to the enclosing object.
func rootToAny(n *ir.Node) (any, error) {
	v, err := ToAny(n)
	if err != nil || !n.HasName {
		return v, err
	}
	return map[string]any{n.Name: v}, nil
}

// normalizeNumbers turns json.Number leaves into their literal text so
// FOA keeps "24" rather than a float rendering like "24.000000".
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	}
	return v
}
