// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reinit

import "fmt"

// Scoped vacancy. Borrow brackets a take with a guaranteed unfilled check
// on every exit path: acquire → use → verify, where verify runs even if
// use unwinds.

// Borrow takes the value out of ref and runs f with the value and the
// hole. When f returns, the hole must have been filled; an unfilled hole
// raises the invariant-violation panic on every exit path — normal
// return, early return, and panic unwind alike. A panic raised while the
// hole is unfilled is escalated with the original panic value chained
// into the diagnostic.
func Borrow[T, R any](ref *T, f func(T, *Hole[T]) R) R {
	v, h := Wrap(ref).Take()
	defer func() {
		if h.Spent() {
			return
		}
		if r := recover(); r != nil {
			panic(fmt.Sprintf("reinit: hole dropped unfilled (during panic: %v)", r))
		}
		panic("reinit: hole dropped unfilled")
	}()
	return f(v, &h)
}

// Renew takes the value out of ref, applies f, and fills the slot with
// the result. The unfilled check spans f: if f panics, the slot is
// logically vacant and the panic is escalated as in [Borrow].
func Renew[T any](ref *T, f func(T) T) {
	Borrow(ref, func(v T, h *Hole[T]) struct{} {
		h.Fill(f(v))
		return struct{}{}
	})
}

// Replace fills the slot with v and returns the previous value.
func Replace[T any](ref *T, v T) T {
	old, h := Wrap(ref).Take()
	h.Fill(v)
	return old
}

// Swap exchanges the values held by two slots.
func Swap[T any](a, b *T) {
	va, ha := Wrap(a).Take()
	vb, hb := Wrap(b).Take()
	ha.Fill(vb)
	hb.Fill(va)
}
