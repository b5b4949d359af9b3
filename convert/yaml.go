package convert

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/foa-format/go-foa/ir"
)

// ToYAML writes nodes as YAML: a single tree as one document, several as a
// sequence.
func ToYAML(w io.Writer, nodes []*ir.Node) error {
	v, err := manyToAny(nodes)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// FromYAML reads one YAML document and converts it to a document tree.
func FromYAML(r io.Reader) ([]*ir.Node, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return []*ir.Node{FromAny(normalizeYAML(v))}, nil
}

// normalizeYAML rewrites goccy map keys (any-typed) to strings so FromAny
// sees the map[string]any shape.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[keyString(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	}
	return v
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return yamlScalarString(k)
}

func yamlScalarString(v any) string {
	d, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	s := string(d)
	// yaml.Marshal appends a trailing newline.
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}
