// Package equal implements the two comparisons expectations are built on.
//
// Equal is structural deep equality: numbers compare by value across numeric
// kinds, arrays element by element, maps by key set and values regardless of
// order, structs field by field, pointers by what they point to. Types with
// an Equal method of the form (T) Equal(T) bool, such as time.Time, are
// compared with it, and regular expressions by their pattern.
//
// Identical is strict identity with no coercion: scalars of the same type
// compare with ==, reference types (slices, maps, pointers, channels and
// funcs) compare by reference.
package equal
