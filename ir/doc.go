// Package ir provides the document tree built from FOA entity streams.
//
// The codec core (stream, scan) does not validate nesting; [Read] does,
// turning a flat entity sequence into balanced [Node] trees and rejecting
// mismatched or unclosed structure.
package ir
