package entity

import "strings"

// Classify maps the raw text of one record to an Entity. The text is
// trimmed, split at the first '=' into name and value (both trimmed), and
// classified: a value that is exactly one structural character is always a
// structural marker, everything else is data. When unescape is set, %XX
// escapes of reserved characters in names and data values are decoded.
//
// A single-character data value equal to a structural character therefore
// cannot be represented unescaped; that ambiguity is part of the format.
func Classify(text string, line int, unescape bool) Entity {
	e := Entity{Line: line}
	value := strings.TrimSpace(text)
	if name, rest, found := strings.Cut(value, "="); found {
		e.Name = strings.TrimSpace(name)
		e.HasName = true
		value = strings.TrimSpace(rest)
		if unescape {
			e.Name = Unescape(e.Name)
		}
	}
	if len(value) == 1 {
		if k, ok := KindOf(value[0]); ok {
			e.Kind = k
			e.Data = value
			return e
		}
	}
	e.Kind = Data
	if unescape {
		value = Unescape(value)
	}
	e.Data = value
	return e
}
