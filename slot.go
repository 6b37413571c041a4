// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"sync"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"github.com/eapache/queue"
)

// minQueueCapacity is the smallest ring lfq accepts.
const minQueueCapacity = 2

// slot is the transport behind one index of a group.
// All operations are non-blocking. trySend and tryRecv return
// ErrWouldBlock at the boundary and ErrClosed once the slot is closed
// (tryRecv only after the slot has been drained).
type slot[T any] interface {
	trySend(v *T) error
	tryRecv() (T, error)
	close() bool
	isClosed() bool
	len() int
	capacity() (int, bool)
}

// latch sets f and reports whether this call set it. Once set, f is only
// read, so repeated calls cannot wrap the counter.
func latch(f *atomix.Uint32) bool {
	if f.Load() != 0 {
		return false
	}
	return f.Add(1) == 1
}

// boundedSlot is a lock-free MPMC queue with an exact bound.
// lfq rounds capacity up to a power of two, so the bound is enforced by
// reserving a count before Enqueue. Compact selects the CAS-based
// algorithm, which has no dequeue threshold and needs no Drain on close.
// close waits for in-flight senders, so no send succeeds after it returns.
type boundedSlot[T any] struct {
	q       lfq.Queue[T]
	n       atomic.Int64
	limit   int64
	closed  atomix.Uint32
	sending atomix.Uint32
}

func newBoundedSlot[T any](capacity int) *boundedSlot[T] {
	return &boundedSlot[T]{
		q:     lfq.Build[T](lfq.New(max(capacity, minQueueCapacity)).Compact()),
		limit: int64(capacity),
	}
}

func (s *boundedSlot[T]) trySend(v *T) error {
	s.sending.Add(1)
	defer s.sending.Add(^uint32(0))
	if s.closed.Load() != 0 {
		return ErrClosed
	}
	for {
		n := s.n.Load()
		if n >= s.limit {
			return ErrWouldBlock
		}
		if s.n.CompareAndSwap(n, n+1) {
			break
		}
	}
	if err := s.q.Enqueue(v); err != nil {
		s.n.Add(-1)
		return ErrWouldBlock
	}
	return nil
}

func (s *boundedSlot[T]) tryRecv() (T, error) {
	v, err := s.q.Dequeue()
	if err == nil {
		s.n.Add(-1)
		return v, nil
	}
	var zero T
	if s.closed.Load() != 0 && s.n.Load() == 0 {
		return zero, ErrClosed
	}
	return zero, ErrWouldBlock
}

// close reports whether this call closed the slot.
func (s *boundedSlot[T]) close() bool {
	first := latch(&s.closed)
	var bo iox.Backoff
	for s.sending.Load() != 0 {
		bo.Wait()
	}
	return first
}

func (s *boundedSlot[T]) isClosed() bool {
	return s.closed.Load() != 0
}

func (s *boundedSlot[T]) len() int {
	return int(s.n.Load())
}

func (s *boundedSlot[T]) capacity() (int, bool) {
	return int(s.limit), true
}

// unboundedSlot is a growable ring buffer guarded by a mutex.
// Sends never report ErrWouldBlock.
type unboundedSlot[T any] struct {
	mu     sync.Mutex
	q      *queue.Queue
	closed atomix.Uint32
}

func newUnboundedSlot[T any]() *unboundedSlot[T] {
	return &unboundedSlot[T]{q: queue.New()}
}

func (s *unboundedSlot[T]) trySend(v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() != 0 {
		return ErrClosed
	}
	s.q.Add(*v)
	return nil
}

func (s *unboundedSlot[T]) tryRecv() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.q.Length() == 0 {
		var zero T
		if s.closed.Load() != 0 {
			return zero, ErrClosed
		}
		return zero, ErrWouldBlock
	}
	v, _ := s.q.Remove().(T)
	return v, nil
}

func (s *unboundedSlot[T]) close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return latch(&s.closed)
}

func (s *unboundedSlot[T]) isClosed() bool {
	return s.closed.Load() != 0
}

func (s *unboundedSlot[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Length()
}

func (s *unboundedSlot[T]) capacity() (int, bool) {
	return 0, false
}
