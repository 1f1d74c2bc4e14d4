// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reinit

// Filled is a handle over a slot that currently holds a live T.
// It borrows the slot exclusively for its own extent; the caller must not
// access the slot through any other path while the handle is in play.
//
// Every Filled operation is total. No panic originates from this type.
type Filled[T any] struct {
	ref *T
}

// Wrap constructs a Filled handle from a reference to a live value.
// The caller asserts validity; no check is performed and no memory is
// touched. Wrap is the only entry point into the handle state machine.
func Wrap[T any](ref *T) Filled[T] { return Filled[T]{ref: ref} }

// Unwrap returns the inner reference, leaving the value in place.
// The handle's borrow ends here; the slot remains valid.
func (f Filled[T]) Unwrap() *T { return f.ref }

// Take moves the value out of the slot and returns it together with a
// Hole borrowing the same slot. The slot is logically vacated but its
// bytes are left untouched, unless built with the reinitpoison tag.
//
// Take always succeeds and allocates nothing. The caller is obligated to
// fill the returned hole before the slot's lifetime ends; see [Borrow]
// and [Arm] for enforcement of that obligation.
func (f Filled[T]) Take() (T, Hole[T]) {
	v := *f.ref
	if poisonOnTake {
		var zero T
		*f.ref = zero
	}
	return v, Hole[T]{ref: f.ref}
}

// Hole is a handle over a slot whose content must not be interpreted
// as a T. It exposes no access to the element; the only way out of the
// empty state is [Hole.Fill] or [Hole.TryFill].
//
// A Hole is affine: Fill spends it, and spending it again panics.
// Pass a Hole by pointer when transferring it between functions — a
// by-value copy carries its own spent flag and defeats the reuse check,
// the same way mem-forgetting defeats a drop check.
//
// The zero Hole is spent.
type Hole[T any] struct {
	ref *T
}

// Fill writes v into the slot, spends the hole, and returns a fresh
// Filled handle over the same slot.
// Panics if the hole has already been spent.
func (h *Hole[T]) Fill(v T) Filled[T] {
	if h.ref == nil {
		panic("reinit: hole filled twice")
	}
	ref := h.ref
	h.ref = nil
	*ref = v
	return Filled[T]{ref: ref}
}

// TryFill attempts to fill the hole.
// Returns (handle, true) on success, or (zero, false) if already spent.
func (h *Hole[T]) TryFill(v T) (Filled[T], bool) {
	if h.ref == nil {
		return Filled[T]{}, false
	}
	ref := h.ref
	h.ref = nil
	*ref = v
	return Filled[T]{ref: ref}, true
}

// Spent reports whether the hole has been consumed by a fill.
func (h *Hole[T]) Spent() bool { return h.ref == nil }
