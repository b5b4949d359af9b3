package encode

import (
	"io"
	"strings"

	"github.com/signadot/foa-format/go-foa/entity"
	"github.com/signadot/foa-format/go-foa/ir"
)

type encState struct {
	w      io.Writer
	indent int
	escape bool
	colors *Colors
	depth  int
}

// Encode renders nodes to w, one wire record per line, indented by nesting
// depth.
func Encode(w io.Writer, nodes []*ir.Node, opts ...EncodeOption) error {
	es := &encState{w: w, indent: 2, escape: true}
	for _, opt := range opts {
		opt(es)
	}
	for _, n := range nodes {
		if err := es.node(n); err != nil {
			return err
		}
	}
	return nil
}

// MustString renders nodes to a string, mainly for tests and diffs. Color
// is never applied.
func MustString(nodes []*ir.Node, opts ...EncodeOption) string {
	var b strings.Builder
	es := &encState{w: &b, indent: 2, escape: true}
	for _, opt := range opts {
		opt(es)
	}
	es.colors = nil
	for _, n := range nodes {
		// strings.Builder writes cannot fail.
		_ = es.node(n)
	}
	return b.String()
}

func (es *encState) node(n *ir.Node) error {
	switch n.Type {
	case ir.DataType:
		return es.line(n, es.text(n.Value), ValueColor)
	case ir.ObjectType, ir.ArrayType:
		begin, end := entity.StartObject, entity.EndObject
		if n.Type == ir.ArrayType {
			begin, end = entity.StartArray, entity.EndArray
		}
		if err := es.line(n, string(begin.Byte()), StructuralColor); err != nil {
			return err
		}
		es.depth++
		for _, c := range n.Values {
			if err := es.node(c); err != nil {
				return err
			}
		}
		es.depth--
		return es.write(es.pad() + es.color(StructuralColor, string(end.Byte())) + "\n")
	}
	return nil
}

func (es *encState) line(n *ir.Node, value string, attr ColorAttr) error {
	var b strings.Builder
	b.WriteString(es.pad())
	if n.HasName {
		b.WriteString(es.color(NameColor, es.text(n.Name)))
		b.WriteString(es.color(SepColor, " = "))
	}
	b.WriteString(es.color(attr, value))
	b.WriteByte('\n')
	return es.write(b.String())
}

func (es *encState) text(s string) string {
	if es.escape {
		return entity.Escape(s)
	}
	return s
}

func (es *encState) pad() string {
	return strings.Repeat(" ", es.depth*es.indent)
}

func (es *encState) color(a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Get(a)(s)
}

func (es *encState) write(s string) error {
	_, err := io.WriteString(es.w, s)
	return err
}
