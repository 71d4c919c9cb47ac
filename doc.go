// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package serial implements RFC 1982 serial number arithmetic
// (https://datatracker.ietf.org/doc/html/rfc1982) over fixed-width
// unsigned integers, as used by DNS SOA serials, sequence counters,
// and other wraparound-safe monotonic identifiers.
//
// # Value model
//
//   - [Number] wraps a single unsigned integer of a fixed bit-width B.
//     The width is part of the type identity: Number[uint8] and
//     Number[uint16] never compare, by construction.
//   - Values live on the modular ring of size 2^B. [Number.Inc] and
//     [Number.PostInc] wrap silently past the maximum back to zero.
//   - Plain value semantics: copy and drop freely, zero value is serial 0.
//
// # Comparison
//
// [Number.Equal] is raw equality. The ordering predicates [Number.Less],
// [Number.Greater], [Number.LessEq], [Number.GreaterEq] follow the
// circular rule: s1 < s2 iff s1 ≠ s2 and either i1 < i2 with
// i2−i1 < 2^(B−1), or i1 > i2 with i1−i2 > 2^(B−1). A value that has
// just wrapped around is therefore greater than one from before the wrap:
//
//	s1 := serial.New[uint8](10)
//	s2 := serial.New[uint8](250)
//	s1.Greater(s2) // true: 250 is 16 steps behind 10 on the ring
//
// When the distance between two distinct values is exactly half the ring
// (2^(B−1)), RFC 1982 leaves the ordering undefined. This package fixes
// the policy: every ordering predicate reports false both ways, and only
// [Number.NotEqual] holds. [Compare] surfaces the same region explicitly
// as the Left branch of a [code.hybscloud.com/kont.Either].
//
// # Plain operands
//
// Comparing against a plain number first narrows it into the ring of the
// wrapper via [Of], matching the modular domain. This can surprise when
// the operand exceeds the width:
//
//	sn := serial.New[uint8](10)
//	sn.Equal(serial.Of[uint8](266)) // true: 266 mod 256 == 10
//
// # Arithmetic
//
// Only increment is provided. RFC 1982 defines addition of n for
// 0 ≤ n ≤ 2^(B−1)−1, but there is no way to signal a too-large addend
// through this interface, so bounded addition stays with the caller:
//
//	s := serial.New[uint16](0)
//	s.Assign(s.Value() + 23)
//
// # Issuing
//
// [Source] issues consecutive serial numbers and is safe for concurrent
// use, backed by an atomic counter from [code.hybscloud.com/atomix].
// Individual [Number] values are not synchronized; sharing one mutable
// instance across goroutines is the caller's concern, same as any value.
package serial
