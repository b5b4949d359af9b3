package entity

import (
	"fmt"
	"strconv"
)

// Kind classifies a decoded record.
type Kind int

const (
	Data Kind = iota
	StartObject
	StartArray
	EndObject
	EndArray
)

func (k Kind) String() string {
	return map[Kind]string{
		Data:        "Data",
		StartObject: "StartObject",
		StartArray:  "StartArray",
		EndObject:   "EndObject",
		EndArray:    "EndArray",
	}[k]
}

// Structural reports whether k opens or closes an object or array.
func (k Kind) Structural() bool {
	return k != Data
}

// Byte returns the wire character for a structural kind, or 0 for Data.
func (k Kind) Byte() byte {
	switch k {
	case StartObject:
		return '('
	case StartArray:
		return '['
	case EndObject:
		return ')'
	case EndArray:
		return ']'
	}
	return 0
}

// KindOf maps a wire character to its structural kind.
func KindOf(c byte) (Kind, bool) {
	switch c {
	case '(':
		return StartObject, true
	case '[':
		return StartArray, true
	case ')':
		return EndObject, true
	case ']':
		return EndArray, true
	}
	return Data, false
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	v, ok := map[string]Kind{
		"Data":        Data,
		"StartObject": StartObject,
		"StartArray":  StartArray,
		"EndObject":   EndObject,
		"EndArray":    EndArray,
	}[string(d)]
	if ok {
		*k = v
		return nil
	}
	return fmt.Errorf("unknown kind %q", string(d))
}

// Entity is one decoded record with its 1-based source line number.
// The text is copied out of the decoder's scan buffer, so an Entity stays
// valid however long the caller retains it.
type Entity struct {
	Name    string
	HasName bool
	Data    string
	Kind    Kind
	Line    int
}

func (e *Entity) Info() string {
	if e.HasName {
		return fmt.Sprintf("%s %s = %s at line %d", e.Kind, strconv.Quote(e.Name), strconv.Quote(e.Data), e.Line)
	}
	return fmt.Sprintf("%s %s at line %d", e.Kind, strconv.Quote(e.Data), e.Line)
}
