package ir

import (
	"strings"

	"github.com/signadot/foa-format/go-foa/entity"
)

// Type classifies a Node.
type Type int

const (
	DataType Type = iota
	ObjectType
	ArrayType
)

func (t Type) String() string {
	return map[Type]string{
		DataType:   "data",
		ObjectType: "object",
		ArrayType:  "array",
	}[t]
}

// Node is one element of a decoded document tree: a data value or an
// object/array with children, optionally named. Line is the source line of
// the entity that opened the node (0 for constructed trees).
type Node struct {
	Type    Type
	Name    string
	HasName bool
	Value   string  // data nodes
	Values  []*Node // object and array children
	Line    int
}

// Data constructs an unnamed data node.
func Data(value string) *Node {
	return &Node{Type: DataType, Value: value}
}

// Object constructs an unnamed object node.
func Object(children ...*Node) *Node {
	return &Node{Type: ObjectType, Values: children}
}

// Array constructs an unnamed array node.
func Array(children ...*Node) *Node {
	return &Node{Type: ArrayType, Values: children}
}

// WithName names n and returns it.
func (n *Node) WithName(name string) *Node {
	n.Name = name
	n.HasName = true
	return n
}

// Get returns the first child named name, or nil.
func (n *Node) Get(name string) *Node {
	for _, c := range n.Values {
		if c.HasName && c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants in document order. Returning false
// from fn skips the children of the current node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Values {
		c.Walk(fn)
	}
}

// Entities flattens the tree back to the entity sequence that produces it.
func (n *Node) Entities() []entity.Entity {
	return n.appendEntities(nil)
}

func (n *Node) appendEntities(out []entity.Entity) []entity.Entity {
	switch n.Type {
	case DataType:
		out = append(out, entity.Entity{
			Name: n.Name, HasName: n.HasName,
			Data: n.Value, Kind: entity.Data, Line: n.Line,
		})
	case ObjectType, ArrayType:
		begin, end := entity.StartObject, entity.EndObject
		if n.Type == ArrayType {
			begin, end = entity.StartArray, entity.EndArray
		}
		out = append(out, entity.Entity{
			Name: n.Name, HasName: n.HasName,
			Data: string(begin.Byte()), Kind: begin, Line: n.Line,
		})
		for _, c := range n.Values {
			out = c.appendEntities(out)
		}
		out = append(out, entity.Entity{
			Data: string(end.Byte()), Kind: end,
		})
	}
	return out
}

// String renders the node in wire format, mainly for debugging.
func (n *Node) String() string {
	var b strings.Builder
	for _, ent := range n.Entities() {
		if ent.HasName {
			b.WriteString(entity.Escape(ent.Name))
			b.WriteString(" = ")
		}
		if ent.Kind == entity.Data {
			b.WriteString(entity.Escape(ent.Data))
		} else {
			b.WriteString(ent.Data)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
