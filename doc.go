// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package swch provides switch channels: a group of N point-to-point
// slots behind one sender and one receiver that share an atomic cursor
// designating the active slot.
//
// Moving the cursor from either side moves the default slot of both, so a
// consumer can hand the default slot over to fresh traffic while it drains
// the previous one. This gives priority draining and anti-starvation
// patterns without a multiplexer.
//
// # Architecture
//
//   - Transport: bounded slots are lock-free MPMC queues via
//     [code.hybscloud.com/lfq]; unbounded slots are growable ring buffers.
//   - Cursor: a shared atomic counter. Every index derived from it is
//     reduced into [0, N).
//   - Non-blocking: TrySend and TryRecv return [ErrWouldBlock] at the
//     boundary and [ErrClosed] after Close.
//   - Blocking: Send and Recv wait past the boundary with adaptive backoff
//     ([code.hybscloud.com/iox.Backoff]).
//   - Tasks: [Send] and [Recv] are [code.hybscloud.com/kont] effects, so the
//     same operations run as cooperative tasks via [Step], [Advance] and
//     [RunTasks], or to completion via [Exec].
//
// # Permissions
//
// Switching is a build-time capability. [Build] returns handles that
// cannot switch; [BuildSwitchSender], [BuildSwitchReceiver] and
// [BuildSwitch] return [SwitchSender] and [SwitchReceiver] handles for the
// permitted sides.
//
// # Switching
//
// Each switch operation (SwitchAdd, SwitchSub, SwitchAnd, SwitchOr,
// SwitchXor, SwitchNand, SwitchMin, SwitchMax, SwitchUpdate) applies one
// atomic fetch-and-modify to the cursor and returns a guard bound to the
// slot the cursor designated before the change. Concurrent switchers are
// not serialized, so a returned guard may already be stale.
//
// # Example
//
//	tx, rx := swch.Unbounded[int](2)
//	tx.Switch().Send(10) // lands in slot 0, default moves to slot 1
//	tx.Send(20)          // lands in slot 1
//	v, _ := rx.Switch().TryRecv() // 20, default moves back to slot 0
//	w, _ := rx.TryRecv()          // 10
package swch
