// Package format names the serialization formats the FOA tooling can read
// and write.
package format
