// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// errorDispatcher is the structural interface of kont error effects.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// taskErrorHandler handles task effects and kont error effects.
// Task effects wait on ErrWouldBlock via iox.Backoff; Throw short-circuits.
type taskErrorHandler[E, A any] struct {
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler. Dispatch order: task, then error.
func (h taskErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if top, ok := op.(taskDispatcher); ok {
		return dispatchWait(top), true
	}
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("swch: unhandled effect in taskErrorHandler")
}

// ExecError runs a Cont-world task that may throw E.
// Returns Right on completion and Left on Throw. A typical use is turning
// ErrClosed from RecvBind into a Throw that ends the task.
func ExecError[E, R any](task kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](task, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	return kont.Handle(wrapped, taskErrorHandler[E, R]{errCtx: &errCtx})
}

// ExecErrorExpr is ExecError for Expr-world tasks.
func ExecErrorExpr[E, R any](task kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(task, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	return kont.HandleExpr(wrapped, taskErrorHandler[E, R]{errCtx: &errCtx})
}

// RunError runs two Cont-world tasks with error handling, interleaved on
// the calling goroutine. Result types are restricted as for Step.
func RunError[E, A, B any](a kont.Eff[A], b kont.Eff[B]) (kont.Either[E, A], kont.Either[E, B]) {
	return RunErrorExpr[E](Reify(a), Reify(b))
}

// RunErrorExpr runs two Expr-world tasks with error handling, interleaved
// on the calling goroutine with adaptive backoff when both are blocked.
func RunErrorExpr[E, A, B any](a kont.Expr[A], b kont.Expr[B]) (kont.Either[E, A], kont.Either[E, B]) {
	resultA, suspA := StepError[E](a)
	resultB, suspB := StepError[E](b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			if resultA, suspA, err = AdvanceError[E](suspA); err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			if resultB, suspB, err = AdvanceError[E](suspB); err == nil {
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}

// StepError evaluates a task with error support until its first
// suspension. Returns (Either, nil) on completion or Throw, or
// (zero, suspension) if pending. R is restricted as for Step.
func StepError[E, R any](task kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(task, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation once.
// Task effects are non-blocking and may return ErrWouldBlock with the
// suspension unconsumed. Error effects are eager: Throw discards the
// suspension and returns Left.
func AdvanceError[E, R any](susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]], error) {
	if top, ok := susp.Op().(taskDispatcher); ok {
		v, err := top.DispatchTask()
		if err != nil {
			var zero kont.Either[E, R]
			return zero, susp, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	if eop, ok := susp.Op().(errorDispatcher[E]); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("swch: unhandled effect in AdvanceError")
}
