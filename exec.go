// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// taskHandler implements kont.Handler for Send and Recv effects.
// It waits past iox.ErrWouldBlock, turning a task into a blocking call.
type taskHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (taskHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	top, ok := op.(taskDispatcher)
	if !ok {
		panic("swch: unhandled effect in taskHandler")
	}
	return dispatchWait(top), true
}

// dispatchWait blocks until DispatchTask succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func dispatchWait(op taskDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := op.DispatchTask()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world task on the calling goroutine, blocking at each
// suspension point with adaptive backoff.
func Exec[R any](task kont.Eff[R]) R {
	return kont.Handle(task, taskHandler[R]{})
}

// ExecExpr runs an Expr-world task on the calling goroutine, blocking at
// each suspension point with adaptive backoff.
func ExecExpr[R any](task kont.Expr[R]) R {
	return kont.HandleExpr(task, taskHandler[R]{})
}
