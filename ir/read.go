package ir

import (
	"fmt"
	"io"

	"github.com/signadot/foa-format/go-foa/entity"
	"github.com/signadot/foa-format/go-foa/stream"
)

// Read builds document trees from an entity stream, enforcing balanced
// structure. It returns the sequence of top-level nodes.
func Read(r stream.EntityReader) ([]*Node, error) {
	var (
		roots []*Node
		stack []*Node
	)
	attach := func(n *Node) {
		if len(stack) == 0 {
			roots = append(roots, n)
			return
		}
		parent := stack[len(stack)-1]
		parent.Values = append(parent.Values, n)
	}
	for {
		ent, err := r.NextEntity()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch ent.Kind {
		case entity.StartObject, entity.StartArray:
			typ := ObjectType
			if ent.Kind == entity.StartArray {
				typ = ArrayType
			}
			n := &Node{Type: typ, Name: ent.Name, HasName: ent.HasName, Line: ent.Line}
			attach(n)
			stack = append(stack, n)
		case entity.EndObject, entity.EndArray:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: %q at line %d closes nothing", ErrUnbalanced, ent.Data, ent.Line)
			}
			top := stack[len(stack)-1]
			want := ObjectType
			if ent.Kind == entity.EndArray {
				want = ArrayType
			}
			if top.Type != want {
				return nil, fmt.Errorf("%w: %s opened at line %d closed by %q at line %d",
					ErrUnbalanced, top.Type, top.Line, ent.Data, ent.Line)
			}
			stack = stack[:len(stack)-1]
		default:
			attach(&Node{
				Type: DataType,
				Name: ent.Name, HasName: ent.HasName,
				Value: ent.Data,
				Line:  ent.Line,
			})
		}
	}
	if len(stack) != 0 {
		top := stack[len(stack)-1]
		return nil, fmt.Errorf("%w: %s opened at line %d never closed", ErrUnbalanced, top.Type, top.Line)
	}
	return roots, nil
}

// Parse decodes data in place and builds its document trees.
func Parse(data []byte, opts ...stream.Option) ([]*Node, error) {
	return Read(stream.NewDecoderBytes(data, opts...))
}

// ReadAll decodes r and builds its document trees.
func ReadAll(r io.Reader, opts ...stream.Option) ([]*Node, error) {
	dec, err := stream.NewDecoder(r, opts...)
	if err != nil {
		return nil, err
	}
	return Read(dec)
}

// Write flattens nodes into sink in document order.
func Write(sink stream.EntitySink, nodes ...*Node) error {
	for _, n := range nodes {
		for _, ent := range n.Entities() {
			if err := sink.WriteEntity(&ent); err != nil {
				return err
			}
		}
	}
	return nil
}
