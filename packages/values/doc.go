// Package values classifies the heterogeneous values an expectation can wrap.
//
// Every subject falls into one of a small set of kinds:
//   - nil (untyped nil, nil pointers, nil funcs and nil interfaces)
//   - boolean, number (all int, uint and float kinds) and string
//   - array (slices and Go arrays)
//   - object (maps, structs and non-nil pointers)
//   - function (Go funcs and anything implementing Callable, such as spies)
//
// On top of that classification the package provides the helpers the
// predicates rely on: truthiness, numeric ordering across kinds, the
// typeof-style IsA check, containment over arrays, objects and strings, and
// argument preparation for reflective calls.
package values
