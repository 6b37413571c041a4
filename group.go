// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"math/bits"

	"code.hybscloud.com/atomix"
)

// shared is the state jointly owned by every Sender and Receiver handle
// of one group. It is allocated once per Build and never copied.
type shared struct {
	cursor    cursor
	closed    atomix.Uint32
	senders   atomix.Uint32
	receivers atomix.Uint32
	serial    Serial
	n         uint64
	mask      uint64
	pow2      bool
}

// index reduces a cursor value into [0, n).
func (st *shared) index(v uint64) int {
	if st.pow2 {
		return int(v & st.mask)
	}
	return int(v % st.n)
}

// group is the slot array plus the shared state, embedded by all handles.
type group[T any] struct {
	slots []slot[T]
	st    *shared
}

func (g *group[T]) current() int {
	return g.st.index(g.st.cursor.load())
}

func (g *group[T]) guard(i int) guard[T] {
	return guard[T]{s: g.slots[i], st: g.st, i: i}
}

// Close closes every slot of the group.
// It reports whether this call performed the first closure; every later
// call, from any handle of either side, returns false.
// Blocked Send and Recv calls on any handle return once the slot they wait
// on is closed (Recv after draining it).
func (g *group[T]) Close() bool {
	first := latch(&g.st.closed)
	for _, s := range g.slots {
		s.close()
	}
	return first
}

// IsClosed reports whether the group has been closed.
func (g *group[T]) IsClosed() bool {
	return g.slots[0].isClosed()
}

// IsEmpty reports whether the active slot holds no messages.
func (g *group[T]) IsEmpty() bool {
	return g.slots[g.current()].len() == 0
}

// IsFull reports whether the active slot is at capacity.
// Unbounded groups are never full.
func (g *group[T]) IsFull() bool {
	return isFull(g.slots[g.current()])
}

// Len returns the number of messages buffered in the active slot.
func (g *group[T]) Len() int {
	return g.slots[g.current()].len()
}

// Capacity returns the per-slot capacity, and false for unbounded groups.
func (g *group[T]) Capacity() (int, bool) {
	return g.slots[0].capacity()
}

// SenderCount returns the number of live sender handles of the group.
func (g *group[T]) SenderCount() int {
	return int(g.st.senders.Load())
}

// ReceiverCount returns the number of live receiver handles of the group.
func (g *group[T]) ReceiverCount() int {
	return int(g.st.receivers.Load())
}

// Index returns the slot the cursor currently designates.
func (g *group[T]) Index() int {
	return g.current()
}

// Slots returns the number of slots in the group.
func (g *group[T]) Slots() int {
	return len(g.slots)
}

// Serial returns the serial number shared by both sides of the group.
func (g *group[T]) Serial() Serial {
	return g.st.serial
}

func isFull[T any](s slot[T]) bool {
	c, ok := s.capacity()
	return ok && s.len() >= c
}

// release drops one handle from counter and closes the group when it was
// the last one on its side.
func (g *group[T]) release(counter *atomix.Uint32, done *atomix.Uint32) {
	if !latch(done) {
		return
	}
	if counter.Add(^uint32(0)) == 0 {
		g.Close()
	}
}

// Builder configures a switch group. The zero configuration after New is
// an unbounded group of n slots.
type Builder struct {
	n        int
	capacity int
	bounded  bool
}

// New starts the configuration of a group of n slots.
// It panics if n < 1.
func New(n int) *Builder {
	if n < 1 {
		panic("swch: slot count must be at least 1")
	}
	return &Builder{n: n}
}

// Bounded makes every slot hold at most capacity messages.
// It panics if capacity < 1.
func (b *Builder) Bounded(capacity int) *Builder {
	if capacity < 1 {
		panic("swch: bounded capacity must be at least 1")
	}
	b.capacity = capacity
	b.bounded = true
	return b
}

// Unbounded makes every slot grow without limit.
func (b *Builder) Unbounded() *Builder {
	b.capacity = 0
	b.bounded = false
	return b
}

// build allocates the slot array and the shared state.
// Both sides start with one handle and the cursor at slot 0.
func build[T any](b *Builder) group[T] {
	slots := make([]slot[T], b.n)
	for i := range slots {
		if b.bounded {
			slots[i] = newBoundedSlot[T](b.capacity)
		} else {
			slots[i] = newUnboundedSlot[T]()
		}
	}
	n := uint64(b.n)
	st := &shared{
		serial: nextSerial(),
		n:      n,
		mask:   n - 1,
		pow2:   bits.OnesCount64(n) == 1,
	}
	st.senders.Add(1)
	st.receivers.Add(1)
	return group[T]{slots: slots, st: st}
}

// Build creates a group whose handles cannot switch.
func Build[T any](b *Builder) (*Sender[T], *Receiver[T]) {
	g := build[T](b)
	return &Sender[T]{group: g}, &Receiver[T]{group: g}
}

// BuildSwitchSender creates a group where only the sender may switch.
func BuildSwitchSender[T any](b *Builder) (*SwitchSender[T], *Receiver[T]) {
	g := build[T](b)
	return &SwitchSender[T]{Sender: Sender[T]{group: g}}, &Receiver[T]{group: g}
}

// BuildSwitchReceiver creates a group where only the receiver may switch.
func BuildSwitchReceiver[T any](b *Builder) (*Sender[T], *SwitchReceiver[T]) {
	g := build[T](b)
	return &Sender[T]{group: g}, &SwitchReceiver[T]{Receiver: Receiver[T]{group: g}}
}

// BuildSwitch creates a group where both sides may switch.
func BuildSwitch[T any](b *Builder) (*SwitchSender[T], *SwitchReceiver[T]) {
	g := build[T](b)
	return &SwitchSender[T]{Sender: Sender[T]{group: g}},
		&SwitchReceiver[T]{Receiver: Receiver[T]{group: g}}
}

// Bounded creates a group of n slots of the given capacity where both
// sides may switch.
func Bounded[T any](capacity, n int) (*SwitchSender[T], *SwitchReceiver[T]) {
	return BuildSwitch[T](New(n).Bounded(capacity))
}

// Unbounded creates a group of n unbounded slots where both sides may
// switch.
func Unbounded[T any](n int) (*SwitchSender[T], *SwitchReceiver[T]) {
	return BuildSwitch[T](New(n))
}

// Di creates a two-slot bounded group where only the receiver switches,
// the usual shape for draining a previous slot while the producer keeps
// writing to the current one.
func Di[T any](capacity int) (*Sender[T], *SwitchReceiver[T]) {
	return BuildSwitchReceiver[T](New(2).Bounded(capacity))
}

// DiUnbounded is Di with unbounded slots.
func DiUnbounded[T any]() (*Sender[T], *SwitchReceiver[T]) {
	return BuildSwitchReceiver[T](New(2))
}
