// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import "sync/atomic"

// cursor is the shared switch counter of a group.
// Every fetch operation returns the value held immediately before the
// modification. Arithmetic wraps around.
type cursor struct {
	v atomic.Uint64
}

func (c *cursor) load() uint64 {
	return c.v.Load()
}

func (c *cursor) fetchAdd(d uint64) uint64 {
	return c.v.Add(d) - d
}

func (c *cursor) fetchSub(d uint64) uint64 {
	return c.v.Add(-d) + d
}

func (c *cursor) fetchAnd(m uint64) uint64 {
	return c.v.And(m)
}

func (c *cursor) fetchOr(m uint64) uint64 {
	return c.v.Or(m)
}

func (c *cursor) fetchXor(m uint64) uint64 {
	return c.modify(func(old uint64) uint64 { return old ^ m })
}

func (c *cursor) fetchNand(m uint64) uint64 {
	return c.modify(func(old uint64) uint64 { return ^(old & m) })
}

func (c *cursor) fetchMin(m uint64) uint64 {
	return c.modify(func(old uint64) uint64 { return min(old, m) })
}

func (c *cursor) fetchMax(m uint64) uint64 {
	return c.modify(func(old uint64) uint64 { return max(old, m) })
}

// modify applies f in a CAS loop.
func (c *cursor) modify(f func(uint64) uint64) uint64 {
	for {
		old := c.v.Load()
		if c.v.CompareAndSwap(old, f(old)) {
			return old
		}
	}
}

// fetchUpdate applies f in a CAS loop until it succeeds or f declines.
// It returns the value f was last given and whether the cursor changed.
func (c *cursor) fetchUpdate(f func(uint64) (uint64, bool)) (uint64, bool) {
	for {
		old := c.v.Load()
		next, ok := f(old)
		if !ok {
			return old, false
		}
		if c.v.CompareAndSwap(old, next) {
			return old, true
		}
	}
}
