// Package convert bridges FOA document trees to and from JSON and YAML.
//
// FOA values are untyped text, so scalars map to strings in both
// directions; foreign scalar types are formatted as their textual form.
package convert
