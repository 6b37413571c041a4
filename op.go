// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"code.hybscloud.com/kont"
)

// SendPort is anything a task can send on: *Sender, *SwitchSender and
// SendGuard all satisfy it.
type SendPort[T any] interface {
	TrySend(v T) error
}

// RecvPort is anything a task can receive from: *Receiver,
// *SwitchReceiver and RecvGuard all satisfy it.
type RecvPort[T any] interface {
	TryRecv() (T, error)
}

// Sent is the resumption value of a Send effect.
// Err is nil or a *SendError wrapping ErrClosed.
type Sent struct {
	Err error
}

// Received is the resumption value of a Recv effect.
// Err is nil or ErrClosed.
type Received[T any] struct {
	Value T
	Err   error
}

// taskDispatcher is the structural interface for task effects.
// DispatchTask is non-blocking: it returns iox.ErrWouldBlock at the
// suspension point, leaving the effect to be dispatched again.
type taskDispatcher interface {
	DispatchTask() (kont.Resumed, error)
}

// Send is the effect operation for sending Value on To.
// Perform(Send[T]{To: p, Value: v}) suspends while the port is full.
type Send[T any] struct {
	kont.Phantom[Sent]
	To    SendPort[T]
	Value T
}

// DispatchTask handles Send with one TrySend.
func (s Send[T]) DispatchTask() (kont.Resumed, error) {
	err := s.To.TrySend(s.Value)
	if IsWouldBlock(err) {
		return nil, ErrWouldBlock
	}
	return Sent{Err: err}, nil
}

// Recv is the effect operation for receiving from From.
// Perform(Recv[T]{From: p}) suspends while the port is empty.
type Recv[T any] struct {
	kont.Phantom[Received[T]]
	From RecvPort[T]
}

// DispatchTask handles Recv with one TryRecv.
func (r Recv[T]) DispatchTask() (kont.Resumed, error) {
	v, err := r.From.TryRecv()
	if IsWouldBlock(err) {
		return nil, ErrWouldBlock
	}
	return Received[T]{Value: v, Err: err}, nil
}
