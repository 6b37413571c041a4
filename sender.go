// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import "code.hybscloud.com/atomix"

// Sender is the send side of a group. Send and TrySend write to the slot
// the shared cursor designates at the moment of the call.
// A Sender cannot switch; see SwitchSender.
type Sender[T any] struct {
	group[T]
	released atomix.Uint32
}

// TrySend sends v on the active slot without blocking.
// A full slot yields a *SendError wrapping ErrWouldBlock, a closed group a
// *SendError wrapping ErrClosed.
func (s *Sender[T]) TrySend(v T) error {
	return trySend(s.slots[s.current()], v)
}

// Send sends v on the active slot, waiting while that slot is full.
// The slot is chosen once; a concurrent switch does not move a pending send.
func (s *Sender[T]) Send(v T) error {
	return sendWait(s.slots[s.current()], v)
}

// GetGuard returns a guard for the active slot without switching.
func (s *Sender[T]) GetGuard() SendGuard[T] {
	return SendGuard[T]{s.guard(s.current())}
}

// Clone returns another sender over the same slots and cursor.
func (s *Sender[T]) Clone() *Sender[T] {
	s.st.senders.Add(1)
	return &Sender[T]{group: s.group}
}

// Release drops this handle. When the last sender of the group is
// released the group is closed. Release is idempotent per handle.
func (s *Sender[T]) Release() {
	s.release(&s.st.senders, &s.released)
}

// SwitchSender is a Sender that may move the shared cursor.
// Every switch operation applies one atomic fetch-and-modify to the cursor
// and returns a guard for the slot designated before the modification.
type SwitchSender[T any] struct {
	Sender[T]
}

// Clone returns another switch-capable sender over the same group.
func (s *SwitchSender[T]) Clone() *SwitchSender[T] {
	s.st.senders.Add(1)
	return &SwitchSender[T]{Sender: Sender[T]{group: s.group}}
}

func (s *SwitchSender[T]) at(old uint64) SendGuard[T] {
	return SendGuard[T]{s.guard(s.st.index(old))}
}

// Switch toggles between slots 0 and 1 of a two-slot group.
// It is SwitchXor(1).
func (s *SwitchSender[T]) Switch() SendGuard[T] {
	return s.SwitchXor(1)
}

// SwitchAdd adds v to the cursor.
func (s *SwitchSender[T]) SwitchAdd(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchAdd(v))
}

// SwitchSub subtracts v from the cursor.
func (s *SwitchSender[T]) SwitchSub(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchSub(v))
}

// SwitchAnd ands the cursor with v.
func (s *SwitchSender[T]) SwitchAnd(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchAnd(v))
}

// SwitchOr ors the cursor with v.
func (s *SwitchSender[T]) SwitchOr(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchOr(v))
}

// SwitchXor xors the cursor with v. With two slots, SwitchXor(1) hands the
// default slot over and returns the one that was active.
func (s *SwitchSender[T]) SwitchXor(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchXor(v))
}

// SwitchNand stores ^(cursor & v).
func (s *SwitchSender[T]) SwitchNand(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchNand(v))
}

// SwitchMin stores min(cursor, v).
func (s *SwitchSender[T]) SwitchMin(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchMin(v))
}

// SwitchMax stores max(cursor, v).
func (s *SwitchSender[T]) SwitchMax(v uint64) SendGuard[T] {
	return s.at(s.st.cursor.fetchMax(v))
}

// SwitchUpdate replaces the cursor with f(old) unless f declines.
// The guard is bound to the slot of old; ok reports whether f applied.
func (s *SwitchSender[T]) SwitchUpdate(f func(uint64) (uint64, bool)) (SendGuard[T], bool) {
	old, ok := s.st.cursor.fetchUpdate(f)
	return s.at(old), ok
}
