// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/kont"
)

var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

func sendBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(error) kont.Expr[B])
	result := f(current.(Sent).Err)
	return kont.Erased(result.Value), result.Frame
}

// ExprSendBind sends v on to and passes the send outcome to f.
// Fuses ExprPerform(Send[T]{To: to, Value: v}) + ExprBind.
func ExprSendBind[T, B any](to SendPort[T], v T, f func(error) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = sendBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Send[T]{To: to, Value: v}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func recvBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T, error) kont.Expr[B])
	r := current.(Received[T])
	result := f(r.Value, r.Err)
	return kont.Erased(result.Value), result.Frame
}

// ExprRecvBind receives from from and passes the value, or ErrClosed, to f.
// Fuses ExprPerform(Recv[T]{From: from}) + ExprBind.
func ExprRecvBind[T, B any](from RecvPort[T], f func(T, error) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = recvBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recv[T]{From: from}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
