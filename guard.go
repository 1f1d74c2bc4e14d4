// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reinit

import (
	"runtime"
	"sync/atomic"
)

// GC-backed detection for holes that escape any scope. Borrow covers the
// bracketed case deterministically; Guard covers holes handed across
// function or structure boundaries, where no scope exit can be hooked.

// Guard arms a hole with a leak check. If an armed guard becomes
// unreachable before its hole is filled, the runtime's cleanup goroutine
// panics with a fixed diagnostic. That panic cannot be recovered by any
// caller, so a leaked hole terminates the process rather than leaving
// the slot silently vacant.
//
// The armed flag is the only concurrently accessed state in this
// package; the cleanup goroutine reads it without synchronizing with the
// owner, so it is atomic.
type Guard[T any] struct {
	hole  *Hole[T]
	armed *atomic.Bool
	stop  runtime.Cleanup
}

// Arm attaches a leak check to h and returns the guard.
// The guard keeps the hole (and the slot it borrows) reachable until
// filled or disarmed.
func Arm[T any](h *Hole[T]) *Guard[T] {
	armed := new(atomic.Bool)
	armed.Store(true)
	g := &Guard[T]{hole: h, armed: armed}
	g.stop = runtime.AddCleanup(g, func(flag *atomic.Bool) {
		if flag.Load() {
			panic("reinit: armed hole collected while unfilled")
		}
	}, armed)
	return g
}

// Fill disarms the guard and fills the hole.
// Panics if the hole has already been spent.
func (g *Guard[T]) Fill(v T) Filled[T] {
	g.disarm()
	return g.hole.Fill(v)
}

// TryFill attempts to disarm and fill.
// Returns (handle, true) on success, or (zero, false) if the guard was
// already used or the hole already spent.
func (g *Guard[T]) TryFill(v T) (Filled[T], bool) {
	if !g.armed.CompareAndSwap(true, false) {
		return Filled[T]{}, false
	}
	g.stop.Stop()
	return g.hole.TryFill(v)
}

// Disarm cancels the leak check without filling the hole. The hole
// remains unfilled and may still be filled directly; use this to hand
// enforcement over to another mechanism.
func (g *Guard[T]) Disarm() { g.disarm() }

// Armed reports whether the leak check is still active.
func (g *Guard[T]) Armed() bool { return g.armed.Load() }

func (g *Guard[T]) disarm() {
	g.armed.Store(false)
	g.stop.Stop()
}
