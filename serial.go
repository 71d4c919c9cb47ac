// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

// Uint is the closed set of underlying widths a [Number] may wrap.
// Go defines no fixed-width uint128, so the ring sizes are 2^8, 2^16,
// 2^32, and 2^64. Any other type is rejected at compile time.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Number is an RFC 1982 serial number on the modular ring of T.
// The zero value is the serial number 0. Number is a plain value:
// assignment copies, == is raw equality, and two Numbers of different
// widths do not type-check against each other.
type Number[T Uint] struct {
	n T
}

// New returns the serial number holding v. Every bit pattern of T is a
// legal serial number; construction never fails.
func New[T Uint](v T) Number[T] {
	return Number[T]{n: v}
}

// Of narrows a plain number into the ring of T and returns it as a
// serial number. The truncating conversion is the package's plain-operand
// coercion: Of[uint8](266) is the serial number 10.
func Of[T Uint](v uint64) Number[T] {
	return Number[T]{n: T(v)}
}

// Value returns the raw underlying integer.
func (s Number[T]) Value() T {
	return s.n
}

// Assign overwrites the stored value and returns s for chaining.
// Assigning one Number to another is plain Go assignment.
func (s *Number[T]) Assign(v T) *Number[T] {
	s.n = v
	return s
}

// Inc is the prefix increment: it advances s by one on the ring,
// wrapping past the maximum to zero, and returns the new state.
func (s *Number[T]) Inc() Number[T] {
	s.n++
	return *s
}

// PostInc is the postfix increment: it advances s by one on the ring
// and returns an independent copy of the state before the increment.
func (s *Number[T]) PostInc() Number[T] {
	prev := *s
	s.n++
	return prev
}
