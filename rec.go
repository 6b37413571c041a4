// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive Cont-world task, such as a drain loop over a
// receiver. step returns Left(next state) to go on or Right(result) to stop.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if result, done := e.GetRight(); done {
			return kont.Pure(result)
		}
		next, _ := e.GetLeft()
		return Loop(next, step)
	})
}

// ExprLoop runs a recursive Expr-world task.
// Iterations that complete without suspending are unrolled in place;
// the first suspending iteration is chained to a bind frame that resumes
// the loop.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	m := step(initial)
	for {
		if _, pure := m.Frame.(kont.ReturnFrame); !pure {
			break
		}
		if result, done := m.Value.GetRight(); done {
			return kont.ExprReturn(result)
		}
		next, _ := m.Value.GetLeft()
		m = step(next)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		e := a.(kont.Either[S, A])
		if result, done := e.GetRight(); done {
			return kont.Expr[kont.Erased]{Value: kont.Erased(result), Frame: exprReturnFrame}
		}
		next, _ := e.GetLeft()
		rest := ExprLoop(next, step)
		return kont.Expr[kont.Erased]{Value: kont.Erased(rest.Value), Frame: rest.Frame}
	}
	bf.Next = exprReturnFrame
	var zero A
	return kont.Expr[A]{Value: zero, Frame: kont.ChainFrames(m.Frame, bf)}
}
