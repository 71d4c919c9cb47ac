// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import "code.hybscloud.com/atomix"

// Source issues consecutive serial numbers of width T.
// Safe for concurrent use; the zero value is ready and issues 1 first.
// The counter truncates into the ring of T, so a narrow Source wraps
// exactly like [Number.Inc] does.
type Source[T Uint] struct {
	counter atomix.Uint64
}

// Next returns the next serial number.
func (s *Source[T]) Next() Number[T] {
	return Number[T]{n: T(s.counter.Add(1))}
}
