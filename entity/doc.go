// Package entity defines the decoded token of the FOA wire format.
//
// An [Entity] is one newline-delimited record: a structural marker for the
// start or end of an object or array, or a data value, optionally named.
// [Classify] maps raw record text to an Entity; [Escape] and [Unescape]
// implement the %XX encoding of the format's reserved characters.
package entity
