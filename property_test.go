// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch_test

import (
	"slices"
	"testing"
	"testing/quick"

	"code.hybscloud.com/swch"
)

// TestPropertySlotFIFO proves that for any payload, any slot count and any
// pattern of sender switches, every slot delivers exactly the values sent
// to it, in send order, without loss or duplication.
func TestPropertySlotFIFO(t *testing.T) {
	property := func(payload []int16, moves []uint8, nRaw uint8, bounded bool) bool {
		n := int(nRaw%8) + 1
		b := swch.New(n)
		if bounded {
			// Room for the whole payload in any one slot.
			b = b.Bounded(len(payload) + 1)
		}
		tx, rx := swch.BuildSwitch[int16](b)

		want := make([][]int16, n)
		for i, v := range payload {
			if len(moves) > 0 {
				tx.SwitchAdd(uint64(moves[i%len(moves)]))
			}
			idx := tx.Index()
			want[idx] = append(want[idx], v)
			if err := tx.TrySend(v); err != nil {
				return false
			}
		}

		// n consecutive SwitchAdd(1) calls visit every slot once.
		seen := 0
		for range n {
			g := rx.SwitchAdd(1)
			got := slices.Collect(g.Drain())
			if !slices.Equal(got, want[g.Index()]) {
				return false
			}
			seen += len(got)
		}
		return seen == len(payload)
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 500}); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyIndexInRange checks that any sequence of switch operations
// on any slot count leaves every guard and the cursor inside [0, n).
func TestPropertyIndexInRange(t *testing.T) {
	ops := []string{"add", "sub", "and", "or", "xor", "nand", "min", "max"}
	property := func(nRaw uint8, codes []uint8, operands []uint64) bool {
		n := int(nRaw%16) + 1
		tx, rx := swch.Unbounded[int](n)
		sops := senderOps(tx)
		model := cursorModel{n: uint64(n)}
		for i, c := range codes {
			var x uint64
			if len(operands) > 0 {
				x = operands[i%len(operands)]
			}
			op := ops[int(c)%len(ops)]
			want := model.apply(op, x)
			g := sops[op](x)
			if g.Index() != want || g.Index() < 0 || g.Index() >= n {
				return false
			}
			if rx.Index() != model.index() {
				return false
			}
			// The guard must address a real slot.
			if err := g.TrySend(i); err != nil {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Fatal(err)
	}
}
