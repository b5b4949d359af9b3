package convert

import (
	"fmt"
	"sort"

	"github.com/signadot/foa-format/go-foa/ir"
)

// ToAny maps a document tree onto generic Go values: objects become
// map[string]any, arrays become []any, data nodes become strings. Names of
// array members are dropped; an unnamed member of an object is an error.
func ToAny(n *ir.Node) (any, error) {
	switch n.Type {
	case ir.DataType:
		return n.Value, nil
	case ir.ArrayType:
		out := make([]any, 0, len(n.Values))
		for _, c := range n.Values {
			v, err := ToAny(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case ir.ObjectType:
		out := make(map[string]any, len(n.Values))
		for _, c := range n.Values {
			if !c.HasName {
				return nil, fmt.Errorf("%w: unnamed object member at line %d", ErrConvert, c.Line)
			}
			v, err := ToAny(c)
			if err != nil {
				return nil, err
			}
			out[c.Name] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: node type %d", ErrConvert, int(n.Type))
}

// FromAny maps generic Go values onto a document tree. Map keys are sorted
// so the result is deterministic.
func FromAny(v any) *ir.Node {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := ir.Object()
		for _, k := range keys {
			obj.Values = append(obj.Values, FromAny(t[k]).WithName(k))
		}
		return obj
	case []any:
		arr := ir.Array()
		for _, e := range t {
			arr.Values = append(arr.Values, FromAny(e))
		}
		return arr
	case string:
		return ir.Data(t)
	case nil:
		return ir.Data("")
	default:
		return ir.Data(fmt.Sprint(t))
	}
}
