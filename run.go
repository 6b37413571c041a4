// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run runs two Cont-world tasks to completion, interleaving them on the
// calling goroutine. Does not spawn goroutines.
// Result types are restricted as for Step: a nil interface result panics.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr runs two Expr-world tasks to completion, interleaving them on
// the calling goroutine. When neither task can make progress it waits
// with adaptive backoff (iox.Backoff).
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step(a)
	resultB, suspB := Step(b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			if resultA, suspA, err = Advance(suspA); err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			if resultB, suspB, err = Advance(suspB); err == nil {
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

// RunTasks runs any number of Expr-world tasks of one result type to
// completion on the calling goroutine, round-robin over their
// suspensions. Results are returned in task order.
// R is restricted as for Step.
func RunTasks[R any](tasks ...kont.Expr[R]) []R {
	results := make([]R, len(tasks))
	susps := make([]*kont.Suspension[R], len(tasks))
	pending := 0
	for i, task := range tasks {
		results[i], susps[i] = Step(task)
		if susps[i] != nil {
			pending++
		}
	}
	var bo iox.Backoff
	for pending > 0 {
		progress := false
		for i, susp := range susps {
			if susp == nil {
				continue
			}
			result, next, err := Advance(susp)
			if err != nil {
				continue
			}
			progress = true
			results[i], susps[i] = result, next
			if next == nil {
				pending--
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return results
}
