// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reinit

// Pass-through access for reference-like element types. A Filled handle
// over a reference-like T can be read and written as if it were the
// reference itself; this is ergonomic sugar, not part of the state machine.

// Deref is implemented by reference-like values that expose their pointee.
type Deref[U any] interface {
	Deref() *U
}

// Indirect returns the pointee of a wrapped pointer element.
// Reads and writes through the result observe and mutate the same
// location as dereferencing the wrapped pointer directly.
func Indirect[U any](f Filled[*U]) *U { return *f.ref }

// Elem returns the pointee of a wrapped reference-like element.
// Both type arguments must be supplied at the call site; Go does not
// infer U from the constraint's method set.
func Elem[T Deref[U], U any](f Filled[T]) *U { return (*f.ref).Deref() }
