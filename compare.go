// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import "code.hybscloud.com/kont"

// half returns 2^(B−1), the critical distance of the ring of T.
func half[T Uint]() T {
	return ^T(0)>>1 + 1
}

// Equal reports whether s and o hold the same raw value.
func (s Number[T]) Equal(o Number[T]) bool {
	return s.n == o.n
}

// NotEqual reports whether s and o hold different raw values.
func (s Number[T]) NotEqual(o Number[T]) bool {
	return s.n != o.n
}

// Less reports whether s precedes o in the RFC 1982 circular order.
// False when the distance between s and o is exactly half the ring.
func (s Number[T]) Less(o Number[T]) bool {
	i1, i2 := s.n, o.n
	h := half[T]()
	return (i1 < i2 && i2-i1 < h) || (i1 > i2 && i1-i2 > h)
}

// Greater reports whether s follows o in the RFC 1982 circular order.
// False when the distance between s and o is exactly half the ring.
func (s Number[T]) Greater(o Number[T]) bool {
	i1, i2 := s.n, o.n
	h := half[T]()
	return (i1 < i2 && i2-i1 > h) || (i1 > i2 && i1-i2 < h)
}

// LessEq reports s.Less(o) || s.Equal(o).
func (s Number[T]) LessEq(o Number[T]) bool {
	return s.n == o.n || s.Less(o)
}

// GreaterEq reports s.Greater(o) || s.Equal(o).
func (s Number[T]) GreaterEq(o Number[T]) bool {
	return s.n == o.n || s.Greater(o)
}

// Incomparable marks a pair of serial numbers at exactly half-ring
// distance, where RFC 1982 defines no order.
type Incomparable struct{}

// Compare orders a against b on the ring: Right(-1) when a precedes b,
// Right(0) when equal, Right(+1) when a follows b. Pairs at exactly
// half-ring distance have no order and yield Left(Incomparable{}).
func Compare[T Uint](a, b Number[T]) kont.Either[Incomparable, int] {
	switch {
	case a.n == b.n:
		return kont.Right[Incomparable](0)
	case a.Less(b):
		return kont.Right[Incomparable](-1)
	case a.Greater(b):
		return kont.Right[Incomparable](+1)
	}
	return kont.Left[Incomparable, int](Incomparable{})
}
