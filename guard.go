// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"iter"

	"code.hybscloud.com/iox"
)

// guard pins one slot of a group. It never reads the cursor.
type guard[T any] struct {
	s  slot[T]
	st *shared
	i  int
}

// Index returns the slot the guard is bound to.
func (g guard[T]) Index() int {
	return g.i
}

// IsClosed reports whether the bound slot is closed.
func (g guard[T]) IsClosed() bool {
	return g.s.isClosed()
}

// IsEmpty reports whether the bound slot holds no messages.
func (g guard[T]) IsEmpty() bool {
	return g.s.len() == 0
}

// IsFull reports whether the bound slot is at capacity.
func (g guard[T]) IsFull() bool {
	return isFull(g.s)
}

// Len returns the number of messages buffered in the bound slot.
func (g guard[T]) Len() int {
	return g.s.len()
}

// Capacity returns the slot capacity, and false when unbounded.
func (g guard[T]) Capacity() (int, bool) {
	return g.s.capacity()
}

// SenderCount returns the number of live sender handles of the group.
func (g guard[T]) SenderCount() int {
	return int(g.st.senders.Load())
}

// ReceiverCount returns the number of live receiver handles of the group.
func (g guard[T]) ReceiverCount() int {
	return int(g.st.receivers.Load())
}

// SendGuard is a send-side accessor fixed to one slot.
// It is returned by GetGuard and by the switch operations of SwitchSender.
type SendGuard[T any] struct {
	guard[T]
}

// TrySend sends v on the bound slot without blocking.
// A full slot yields a *SendError wrapping ErrWouldBlock, a closed one a
// *SendError wrapping ErrClosed.
func (g SendGuard[T]) TrySend(v T) error {
	return trySend(g.s, v)
}

// Send sends v on the bound slot, waiting while it is full.
// It fails with a *SendError wrapping ErrClosed once the slot is closed.
func (g SendGuard[T]) Send(v T) error {
	return sendWait(g.s, v)
}

// RecvGuard is a receive-side accessor fixed to one slot.
// It is returned by GetGuard and by the switch operations of SwitchReceiver.
type RecvGuard[T any] struct {
	guard[T]
}

// TryRecv receives from the bound slot without blocking.
// It returns ErrWouldBlock when the slot is empty and ErrClosed when it is
// closed and drained.
func (g RecvGuard[T]) TryRecv() (T, error) {
	return g.s.tryRecv()
}

// Recv receives from the bound slot, waiting while it is empty.
// It returns ErrClosed once the slot is closed and drained.
func (g RecvGuard[T]) Recv() (T, error) {
	return recvWait(g.s)
}

// Drain yields the messages buffered in the bound slot, in send order,
// one TryRecv per step. It stops at the first empty or closed result and
// never blocks. Ranging over the sequence again drains anew.
func (g RecvGuard[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := g.s.tryRecv()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// All yields messages from the bound slot, waiting while it is empty,
// until the slot is closed and drained.
func (g RecvGuard[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := recvWait(g.s)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func trySend[T any](s slot[T], v T) error {
	if err := s.trySend(&v); err != nil {
		return &SendError[T]{Value: v, Err: err}
	}
	return nil
}

// sendWait blocks until s accepts v, backing off on iox.ErrWouldBlock
// with iox.Backoff.
func sendWait[T any](s slot[T], v T) error {
	var bo iox.Backoff
	for {
		err := s.trySend(&v)
		if err == nil {
			return nil
		}
		if err == ErrClosed {
			return &SendError[T]{Value: v, Err: err}
		}
		bo.Wait()
	}
}

// recvWait blocks until s yields a message or is closed and drained.
func recvWait[T any](s slot[T]) (T, error) {
	var bo iox.Backoff
	for {
		v, err := s.tryRecv()
		if err == nil || err == ErrClosed {
			return v, err
		}
		bo.Wait()
	}
}
