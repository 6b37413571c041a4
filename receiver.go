// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"iter"

	"code.hybscloud.com/atomix"
)

// Receiver is the receive side of a group. Recv and TryRecv read from the
// slot the shared cursor designates at the moment of the call.
// A Receiver cannot switch; see SwitchReceiver.
type Receiver[T any] struct {
	group[T]
	released atomix.Uint32
}

// TryRecv receives from the active slot without blocking.
// It returns ErrWouldBlock when the slot is empty and ErrClosed when the
// slot is closed and drained.
func (r *Receiver[T]) TryRecv() (T, error) {
	return r.slots[r.current()].tryRecv()
}

// Recv receives from the active slot, waiting while it is empty.
// The slot is chosen once; a concurrent switch does not move a pending
// receive. It returns ErrClosed once that slot is closed and drained.
func (r *Receiver[T]) Recv() (T, error) {
	return recvWait(r.slots[r.current()])
}

// GetGuard returns a guard for the active slot without switching.
func (r *Receiver[T]) GetGuard() RecvGuard[T] {
	return RecvGuard[T]{r.guard(r.current())}
}

// Drain is GetGuard().Drain().
func (r *Receiver[T]) Drain() iter.Seq[T] {
	return r.GetGuard().Drain()
}

// All is GetGuard().All().
func (r *Receiver[T]) All() iter.Seq[T] {
	return r.GetGuard().All()
}

// Clone returns another receiver over the same slots and cursor.
func (r *Receiver[T]) Clone() *Receiver[T] {
	r.st.receivers.Add(1)
	return &Receiver[T]{group: r.group}
}

// Release drops this handle. When the last receiver of the group is
// released the group is closed. Release is idempotent per handle.
func (r *Receiver[T]) Release() {
	r.release(&r.st.receivers, &r.released)
}

// SwitchReceiver is a Receiver that may move the shared cursor.
// The switch operations mirror those of SwitchSender and return a guard
// for the slot designated before the modification.
type SwitchReceiver[T any] struct {
	Receiver[T]
}

// Clone returns another switch-capable receiver over the same group.
func (r *SwitchReceiver[T]) Clone() *SwitchReceiver[T] {
	r.st.receivers.Add(1)
	return &SwitchReceiver[T]{Receiver: Receiver[T]{group: r.group}}
}

func (r *SwitchReceiver[T]) at(old uint64) RecvGuard[T] {
	return RecvGuard[T]{r.guard(r.st.index(old))}
}

// Switch is SwitchXor(1).
func (r *SwitchReceiver[T]) Switch() RecvGuard[T] {
	return r.SwitchXor(1)
}

// SwitchAdd adds v to the cursor.
func (r *SwitchReceiver[T]) SwitchAdd(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchAdd(v))
}

// SwitchSub subtracts v from the cursor.
func (r *SwitchReceiver[T]) SwitchSub(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchSub(v))
}

// SwitchAnd ands the cursor with v.
func (r *SwitchReceiver[T]) SwitchAnd(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchAnd(v))
}

// SwitchOr ors the cursor with v.
func (r *SwitchReceiver[T]) SwitchOr(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchOr(v))
}

// SwitchXor xors the cursor with v. With two slots, SwitchXor(1) hands
// the default slot over and returns the one that was active for draining.
func (r *SwitchReceiver[T]) SwitchXor(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchXor(v))
}

// SwitchNand stores ^(cursor & v).
func (r *SwitchReceiver[T]) SwitchNand(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchNand(v))
}

// SwitchMin stores min(cursor, v).
func (r *SwitchReceiver[T]) SwitchMin(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchMin(v))
}

// SwitchMax stores max(cursor, v).
func (r *SwitchReceiver[T]) SwitchMax(v uint64) RecvGuard[T] {
	return r.at(r.st.cursor.fetchMax(v))
}

// SwitchUpdate replaces the cursor with f(old) unless f declines.
func (r *SwitchReceiver[T]) SwitchUpdate(f func(uint64) (uint64, bool)) (RecvGuard[T], bool) {
	old, ok := r.st.cursor.fetchUpdate(f)
	return r.at(old), ok
}
