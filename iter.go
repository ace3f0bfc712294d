package bitview

import "iter"

// Iter is a forward-only cursor over a view. Every call to View.Iter
// starts a fresh traversal; exhaustion is terminal and idempotent.
type Iter struct {
	s   *View
	idx uint
}

// Iter returns a cursor positioned at bit 0.
func (s *View) Iter() *Iter { return &Iter{s: s} }

// Next yields the bit at the cursor and advances. Once the view is
// exhausted every further call returns ok=false without changing state.
func (it *Iter) Next() (bit, ok bool) {
	if it.idx >= it.s.n {
		return false, false
	}
	bit = it.s.Get(it.idx)
	it.idx++
	return bit, true
}

// Nth skips k bits, then yields the next one, consuming k+1 in total.
// Skipping past the end exhausts the cursor.
func (it *Iter) Nth(k uint) (bit, ok bool) {
	if k >= it.s.n-it.idx {
		it.idx = it.s.n
		return false, false
	}
	it.idx += k
	return it.Next()
}

// Remaining reports the exact number of bits left to yield.
func (it *Iter) Remaining() uint { return it.s.n - it.idx }

// MutIter is a write-capable cursor: it can write the bit at the cursor
// and advance, but offers no random-access write.
type MutIter struct {
	Iter
	m *MutView
}

// Iter returns a write-capable cursor positioned at bit 0.
func (m *MutView) Iter() *MutIter {
	return &MutIter{Iter: Iter{s: &m.View}, m: m}
}

// WriteNext writes v at the cursor and advances. It reports false once
// the view is exhausted.
func (it *MutIter) WriteNext(v bool) bool {
	if it.idx >= it.s.n {
		return false
	}
	it.m.set(it.idx, v)
	it.idx++
	return true
}

// All returns a range-over-func traversal of (index, bit) pairs,
// equivalent to draining a fresh cursor.
func (s *View) All() iter.Seq2[uint, bool] {
	return func(yield func(uint, bool) bool) {
		for i := uint(0); i < s.n; i++ {
			if !yield(i, s.Get(i)) {
				return
			}
		}
	}
}
