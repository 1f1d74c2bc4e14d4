// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reinit_test

import (
	"testing"

	"code.hybscloud.com/reinit"
)

func BenchmarkTakeFill(b *testing.B) {
	n := 42
	for b.Loop() {
		v, h := reinit.Wrap(&n).Take()
		_ = h.Fill(v)
	}
}

func BenchmarkReplace(b *testing.B) {
	n := 0
	for b.Loop() {
		_ = reinit.Replace(&n, 7)
	}
}

func BenchmarkSwap(b *testing.B) {
	x, y := 1, 2
	for b.Loop() {
		reinit.Swap(&x, &y)
	}
}

func BenchmarkBorrow(b *testing.B) {
	n := 0
	for b.Loop() {
		_ = reinit.Borrow(&n, func(v int, h *reinit.Hole[int]) int {
			h.Fill(v + 1)
			return v
		})
	}
}

func BenchmarkRenew(b *testing.B) {
	n := 0
	for b.Loop() {
		reinit.Renew(&n, func(v int) int { return v + 1 })
	}
}
