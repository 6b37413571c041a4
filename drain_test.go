// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/swch"
)

func TestDrainYieldsBufferedInOrder(t *testing.T) {
	for _, b := range []*swch.Builder{swch.New(2), swch.New(2).Bounded(16)} {
		tx, rx := swch.BuildSwitchReceiver[int](b)
		for i := range 10 {
			if err := tx.Send(i); err != nil {
				t.Fatalf("Send: %v", err)
			}
		}
		got := slices.Collect(rx.GetGuard().Drain())
		want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		if !slices.Equal(got, want) {
			t.Fatalf("Drain got %v, want %v", got, want)
		}
		if got := slices.Collect(rx.Drain()); len(got) != 0 {
			t.Fatalf("second Drain got %v, want nothing", got)
		}
	}
}

func TestDrainStopsEarly(t *testing.T) {
	tx, rx := swch.Unbounded[int](1)
	for i := range 5 {
		tx.Send(i)
	}
	g := rx.GetGuard()
	for v := range g.Drain() {
		if v == 1 {
			break
		}
	}
	// A fresh range over the guard picks up where the last one stopped.
	got := slices.Collect(g.Drain())
	if !slices.Equal(got, []int{2, 3, 4}) {
		t.Fatalf("resumed Drain got %v, want [2 3 4]", got)
	}
}

func TestDrainClosedEmpty(t *testing.T) {
	_, rx := swch.Unbounded[int](2)
	rx.Close()
	if got := slices.Collect(rx.Drain()); len(got) != 0 {
		t.Fatalf("Drain on closed group got %v", got)
	}
}

func TestDrainPreviousSlot(t *testing.T) {
	// The receiver hands the default slot to new traffic and drains what
	// was queued before the switch.
	tx, rx := swch.DiUnbounded[string]()
	tx.Send("a")
	tx.Send("b")
	prev := rx.Switch()
	tx.Send("c")

	if got := slices.Collect(prev.Drain()); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("previous slot got %v, want [a b]", got)
	}
	if got := slices.Collect(rx.Drain()); !slices.Equal(got, []string{"c"}) {
		t.Fatalf("current slot got %v, want [c]", got)
	}
}

func TestAllUntilClosed(t *testing.T) {
	tx, rx := swch.Unbounded[int](2)
	go func() {
		for i := range 100 {
			tx.Send(i)
		}
		tx.Close()
	}()
	got := slices.Collect(rx.All())
	if len(got) != 100 {
		t.Fatalf("All got %d values, want 100", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("All[%d] got %d", i, v)
		}
	}
}

func TestAllGuardBounded(t *testing.T) {
	skipRace(t)
	tx, rx := swch.Bounded[int](4, 2)
	g := rx.Switch()
	sg := tx.Switch()
	if g.Index() != 0 || sg.Index() != 1 {
		t.Fatalf("guards got %d/%d, want 0/1", g.Index(), sg.Index())
	}
	go func() {
		s0 := tx.GetGuard()
		for i := range 50 {
			s0.Send(i)
		}
		tx.Close()
	}()
	sum := 0
	for v := range g.All() {
		sum += v
	}
	if sum != 49*50/2 {
		t.Fatalf("sum got %d, want %d", sum, 49*50/2)
	}
}
