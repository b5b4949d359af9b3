package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format names a document serialization understood by the tooling.
type Format int

const (
	FOAFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// formats drives parsing, rendering and suffix mapping from one table.
var formats = []struct {
	f      Format
	name   string
	short  string
	suffix string
}{
	{FOAFormat, "foa", "f", ".foa"},
	{JSONFormat, "json", "j", ".json"},
	{YAMLFormat, "yaml", "y", ".yaml"},
}

// ParseFormat accepts a format name, its one-letter shorthand, or its file
// suffix, case-insensitively.
func ParseFormat(v string) (Format, error) {
	s := strings.ToLower(v)
	for _, e := range formats {
		if s == e.name || s == e.short || s == e.suffix {
			return e.f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	for _, e := range formats {
		if e.f == f {
			return []byte(e.name), nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}

func (f *Format) UnmarshalText(d []byte) error {
	v, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Suffix returns the file extension for f.
func (f Format) Suffix() string {
	for _, e := range formats {
		if e.f == f {
			return e.suffix
		}
	}
	return ".foa"
}
