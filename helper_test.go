// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/swch"
)

// execExpr drives a task to completion via a Step+Advance loop,
// retrying on iox.ErrWouldBlock. Used by stepping tests to exercise the
// non-blocking path.
func execExpr[R any](task kont.Expr[R]) R {
	result, susp := swch.Step[R](task)
	for susp != nil {
		var err error
		result, susp, err = swch.Advance(susp)
		if err != nil {
			continue
		}
	}
	return result
}
