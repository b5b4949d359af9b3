// Package encode renders FOA document trees as indented, optionally
// colored text. Leading whitespace carries no meaning on the wire, so the
// indented output still decodes to the same document.
package encode
