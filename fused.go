// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/kont"
)

// SendBind sends v on to and passes the send outcome to f.
// Fuses Perform(Send[T]{To: to, Value: v}) + Bind.
func SendBind[T, B any](to SendPort[T], v T, f func(error) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Send[T]{To: to, Value: v}), func(s Sent) kont.Eff[B] {
		return f(s.Err)
	})
}

// RecvBind receives from from and passes the value, or ErrClosed, to f.
// Fuses Perform(Recv[T]{From: from}) + Bind.
func RecvBind[T, B any](from RecvPort[T], f func(T, error) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Recv[T]{From: from}), func(r Received[T]) kont.Eff[B] {
		return f(r.Value, r.Err)
	})
}
