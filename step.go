// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a task until its first Send or Recv suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
// The result type R must not be an interface type whose result may be
// nil, such as error; carry such outcomes in a struct like Sent.
func Step[R any](task kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(task)
}

// Advance dispatches the suspended effect once.
//
// On success the suspension is consumed and the task runs to its next
// suspension or to completion. On iox.ErrWouldBlock the port was full or
// empty; the same suspension is returned unconsumed for a later retry.
// This is the cooperative suspension point of the task binding: a
// scheduler drives many tasks on one goroutine by calling Advance on each.
// R is restricted as for Step.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	top, ok := susp.Op().(taskDispatcher)
	if !ok {
		panic("swch: unhandled effect in Advance")
	}
	v, err := top.DispatchTask()
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// Reify converts a Cont-world task to Expr-world for Step and RunTasks.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world task to Cont-world for Exec.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
