// Package record defines the tagged value model shared by producers,
// the normalizer, and the exporters.
//
// A Record is an ordered list of named values. Each value carries a Kind
// (Null, Bool, Int, Float, String, Time, Bytes, or List) decided once when
// the value is constructed at the producer boundary, so nothing downstream
// needs reflection to tell a scalar from a list.
//
// Canonical string forms are fixed and locale-independent; see the
// constants in value.go. List values flatten to a single string joined
// with ListSeparator, and splitting on that separator recovers the
// original elements.
package record
