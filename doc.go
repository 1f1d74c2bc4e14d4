// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reinit provides handles for temporarily deinitialising a memory
// slot: moving a value out of a location the caller does not own outright,
// and guaranteeing the location is refilled before anyone can observe or
// abandon it empty.
//
// The core is a type-state pair over a single slot. [Filled] borrows a
// slot that holds a live value; [Hole] borrows the same slot while it is
// logically vacant. Each transition consumes one handle and produces the
// other, so at most one handle is live per slot at any time:
//
//	Filled --Take--> (T, Hole) --Fill--> Filled
//
// No allocation, no sentinel, no option wrapper: both handle types are a
// single pointer wide, identical in layout to a plain *T.
//
// # Handles
//
//   - [Wrap]: construct a [Filled] from a reference to a live value
//   - [Filled.Unwrap]: recover the plain reference, value undisturbed
//   - [Filled.Take]: move the value out, obtain the [Hole]
//   - [Hole.Fill]: move a value in, obtain a fresh [Filled] (panics on reuse)
//   - [Hole.TryFill]: non-panicking variant
//   - [Hole.Spent]: reports whether the hole was consumed
//
// Take leaves the vacated slot's bytes untouched; the emptiness is purely
// logical. Building with the reinitpoison tag zeroes vacated slots instead,
// so stale reads surface in debug builds.
//
// Affine semantics: a [Hole] may be filled at most once. Go cannot forbid
// using a moved-from handle at compile time, so Fill spends the hole and a
// second fill through the same handle panics. Pass holes by pointer; a
// by-value copy carries its own spent flag.
//
// # Scoped Borrowing
//
// A hole that is dropped unfilled leaves the slot permanently vacant, and
// a later read of the slot would see stale content as if it were live.
// [Borrow] brackets the vacancy: it takes the value, runs a function with
// the hole, and verifies on every exit path — normal return, early return,
// panic unwind — that the hole was filled, panicking otherwise.
//
//   - [Borrow]: take, use, verify filled
//   - [Renew]: take, transform, fill with the result
//   - [Replace]: fill with a new value, return the old one
//   - [Swap]: exchange the contents of two slots
//
// # Leak Detection
//
// For holes that escape any scope, [Arm] attaches a [Guard] backed by a
// runtime cleanup. An armed guard collected while its hole is unfilled
// panics in the cleanup goroutine, which no caller can recover: a leaked
// hole crashes the process instead of silently abandoning the slot.
//
//   - [Arm]: attach the leak check
//   - [Guard.Fill], [Guard.TryFill]: disarm and fill
//   - [Guard.Disarm]: cancel the check without filling
//
// # Pass-Through Access
//
// When the element type is itself reference-like, the valid handle
// forwards access to the pointee:
//
//   - [Indirect]: pass-through for pointer elements
//   - [Elem]: pass-through for [Deref] implementors
//
// # Example
//
//	n := 42
//	filled := reinit.Wrap(&n)
//	v, hole := filled.Take()
//	// v == 42; n is logically vacant
//	filled = hole.Fill(24)
//	// n == 24
package reinit
