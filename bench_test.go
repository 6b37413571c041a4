// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/swch"
)

// BenchmarkTrySendRecvBounded measures one non-blocking round-trip on a
// bounded slot.
func BenchmarkTrySendRecvBounded(b *testing.B) {
	tx, rx := swch.Bounded[int](64, 2)
	b.ReportAllocs()
	for b.Loop() {
		tx.TrySend(1)
		rx.TryRecv()
	}
}

// BenchmarkTrySendRecvUnbounded measures one non-blocking round-trip on an
// unbounded slot.
func BenchmarkTrySendRecvUnbounded(b *testing.B) {
	tx, rx := swch.Unbounded[int](2)
	b.ReportAllocs()
	for b.Loop() {
		tx.TrySend(1)
		rx.TryRecv()
	}
}

// BenchmarkSwitchXor measures the two-slot toggle.
func BenchmarkSwitchXor(b *testing.B) {
	_, rx := swch.DiUnbounded[int]()
	b.ReportAllocs()
	for b.Loop() {
		rx.Switch()
	}
}

// BenchmarkSwitchAddMod measures a switch on a slot count that is not a
// power of two.
func BenchmarkSwitchAddMod(b *testing.B) {
	tx, _ := swch.Unbounded[int](3)
	b.ReportAllocs()
	for b.Loop() {
		tx.SwitchAdd(1)
	}
}

// BenchmarkSwitchMax measures a CAS-loop switch operation.
func BenchmarkSwitchMax(b *testing.B) {
	tx, _ := swch.Unbounded[int](4)
	var i uint64
	b.ReportAllocs()
	for b.Loop() {
		i++
		tx.SwitchMax(i)
	}
}

// BenchmarkSwitchParallel measures contended toggling.
func BenchmarkSwitchParallel(b *testing.B) {
	skipRace(b)
	_, rx := swch.DiUnbounded[int]()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			rx.Switch()
		}
	})
}

// BenchmarkHandOff measures switch-then-drain of a batch of eight.
func BenchmarkHandOff(b *testing.B) {
	tx, rx := swch.Di[int](16)
	b.ReportAllocs()
	for b.Loop() {
		for i := range 8 {
			tx.TrySend(i)
		}
		for range rx.Switch().Drain() {
		}
	}
}

// BenchmarkSendRecvTask measures a send/recv round-trip as two tasks.
func BenchmarkSendRecvTask(b *testing.B) {
	skipRace(b)
	tx, rx := swch.Unbounded[int](1)
	b.ReportAllocs()
	for b.Loop() {
		sender := swch.SendBind(tx, 42, func(err error) kont.Eff[swch.Sent] {
			return kont.Pure(swch.Sent{Err: err})
		})
		receiver := swch.RecvBind(rx, func(n int, _ error) kont.Eff[int] {
			return kont.Pure(n)
		})
		swch.Run[swch.Sent, int](sender, receiver)
	}
}

// BenchmarkExprSendRecvTask measures the Expr-world round-trip.
func BenchmarkExprSendRecvTask(b *testing.B) {
	skipRace(b)
	tx, rx := swch.Unbounded[int](1)
	b.ReportAllocs()
	for b.Loop() {
		sender := swch.ExprSendBind(tx, 42, func(err error) kont.Expr[swch.Sent] {
			return kont.ExprReturn(swch.Sent{Err: err})
		})
		receiver := swch.ExprRecvBind(rx, func(n int, _ error) kont.Expr[int] {
			return kont.ExprReturn(n)
		})
		swch.RunExpr[swch.Sent, int](sender, receiver)
	}
}

// BenchmarkExprLoop measures a 100-iteration receive loop.
func BenchmarkExprLoop(b *testing.B) {
	skipRace(b)
	tx, rx := swch.Unbounded[int](1)
	b.ReportAllocs()
	for b.Loop() {
		for i := range 100 {
			tx.TrySend(i)
		}
		execExpr(swch.ExprLoop(0, func(i int) kont.Expr[kont.Either[int, int]] {
			if i == 100 {
				return kont.ExprReturn(kont.Right[int, int](i))
			}
			return swch.ExprRecvBind(rx, func(int, error) kont.Expr[kont.Either[int, int]] {
				return kont.ExprReturn(kont.Left[int, int](i + 1))
			})
		}))
	}
}
