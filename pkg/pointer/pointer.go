// Copyright (c) 2026 Chaldea. All rights reserved.

/*
Package pointer provides utilities for working with pointers in Go.

Partial-update payloads model field presence with pointers (nil means
"not supplied"), so handlers and tests constantly need to lift values
into pointers and back. These generic helpers remove that boilerplate.
*/
package pointer

// To returns a pointer to the provided value.
// It is useful when you need to pass a primitive value to a function or struct field
// that expects a pointer (e.g. pointer.To("Saber")).
func To[T any](v T) *T {
	return &v
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
