// Package bitview provides a non-owning bit-level window over a
// caller-owned byte buffer. A view addresses individual bits under a
// configurable bit-within-byte order (Msb0 / Lsb0) and byte-within-span
// order (BigEndian / LittleEndian), and supports bounds-checked get/set,
// zero-copy sub-slicing, iteration, integer conversion and bounded
// append.
//
// The package never allocates or frees the backing storage (only the
// convenience builders FromBits / FromUintN allocate their own buffer),
// performs no I/O, and assumes single-threaded use: View is the shared
// read-only capability, MutView the exclusive writable one.
//
// Out-of-range indexes and slice bounds are caller contract breaches and
// panic, like indexing a plain slice. Integer overflow and append beyond
// capacity are ordinary, inspectable errors.
package bitview

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow reports an integer conversion whose source bits do not
	// fit the requested width.
	ErrOverflow = errors.New("bitview: value does not fit requested width")
	// ErrCapacity reports a push beyond the backing buffer's capacity.
	ErrCapacity = errors.New("bitview: capacity exceeded")
)

// View is a read-only bit-level view: a window of off+n bits into a
// byte buffer it does not own. Sub-slices share the same buffer and
// never copy bits.
//
// Addressing always spans the full backing buffer, fixed at
// construction and inherited by sub-views, so a sub-view reads the same
// physical bits as its parent even under the span-dependent BigEndian
// byte scan.
type View struct {
	buf     []byte
	off     uint // start bit within the buffer's addressing span
	n       uint // logical length in bits
	bitOrd  BitOrder
	byteOrd ByteOrder
}

// MutView is the exclusive, writable counterpart of View. It is the
// only write capability; while one is live the caller must not read the
// buffer through other views.
type MutView struct {
	View
}

// New returns a read-only view over buf. The logical length defaults to
// the full buffer (len(buf)*8 bits) and the policies to Lsb0 +
// BigEndian; see the Option constructors. Panics if an explicit length
// exceeds the buffer capacity.
func New(buf []byte, opts ...Option) *View {
	s := newView(buf, opts)
	return &s
}

// NewMut returns a writable view over buf. When an explicit length
// shorter than the capacity is given, the bits beyond it are cleared so
// Push finds clean storage.
func NewMut(buf []byte, opts ...Option) *MutView {
	m := &MutView{newView(buf, opts)}
	for i := m.n; i < m.capacity(); i++ {
		m.set(i, false)
	}
	return m
}

func newView(buf []byte, opts []Option) View {
	c := viewConfig{bitOrd: Lsb0, byteOrd: BigEndian, numBits: uint(len(buf)) * 8}
	for _, o := range opts {
		o(&c)
	}
	if capBits := uint(len(buf)) * 8; c.numBits > capBits {
		panic(fmt.Sprintf("bitview: %d bits requested from a %d-bit buffer", c.numBits, capBits))
	}
	return View{buf: buf, n: c.numBits, bitOrd: c.bitOrd, byteOrd: c.byteOrd}
}

// Len returns the view's logical length in bits.
func (s *View) Len() uint { return s.n }

// BitOrder returns the view's bit-within-byte policy.
func (s *View) BitOrder() BitOrder { return s.bitOrd }

// ByteOrder returns the view's byte-within-span policy.
func (s *View) ByteOrder() ByteOrder { return s.byteOrd }

func (s *View) capacity() uint { return uint(len(s.buf)) * 8 }

// address resolves logical bit i to its physical byte and mask.
func (s *View) address(i uint) (byteIdx uint, mask byte) {
	byteIdx, bit := s.bitOrd.findBit(s.byteOrd, s.off+i, s.capacity())
	return byteIdx, 1 << bit
}

// Get reports the value of bit i. Panics if i >= Len().
func (s *View) Get(i uint) bool {
	if i >= s.n {
		panic(fmt.Sprintf("bitview: bit index %d out of range [0, %d)", i, s.n))
	}
	byteIdx, mask := s.address(i)
	return s.buf[byteIdx]&mask != 0
}

// Set writes bit i. Panics if i >= Len().
func (m *MutView) Set(i uint, v bool) {
	if i >= m.n {
		panic(fmt.Sprintf("bitview: bit index %d out of range [0, %d)", i, m.n))
	}
	m.set(i, v)
}

// set is the unchecked write behind Set, Push and the write cursor.
func (m *MutView) set(i uint, v bool) {
	byteIdx, mask := m.address(i)
	if v {
		m.buf[byteIdx] |= mask
	} else {
		m.buf[byteIdx] &^= mask
	}
}

// Push extends the view by one bit, writing v at the new highest index.
// The backing buffer is never reallocated; once the view's remaining
// capacity is exhausted Push returns ErrCapacity.
func (m *MutView) Push(v bool) error {
	if m.off+m.n+1 > m.capacity() {
		return ErrCapacity
	}
	m.n++
	m.set(m.n-1, v)
	return nil
}

// Slice returns the sub-view [i, j) over the same buffer; no bits are
// copied. Panics on an inverted or out-of-range span; bounds are never
// clamped.
func (s *View) Slice(i, j uint) *View {
	sub := s.slice(i, j)
	return &sub
}

// SliceFrom is Slice with an unbounded end.
func (s *View) SliceFrom(i uint) *View { return s.Slice(i, s.n) }

// Slice returns a writable sub-view [i, j); exclusive access carries
// over to it.
func (m *MutView) Slice(i, j uint) *MutView {
	return &MutView{m.slice(i, j)}
}

// SliceFrom is Slice with an unbounded end.
func (m *MutView) SliceFrom(i uint) *MutView { return m.Slice(i, m.n) }

func (s *View) slice(i, j uint) View {
	if i > j || j > s.n {
		panic(fmt.Sprintf("bitview: slice bounds [%d, %d) out of range [0, %d)", i, j, s.n))
	}
	sub := *s
	sub.off += i
	sub.n = j - i
	return sub
}

// RO downgrades the view to its read-only form. The caller gives up the
// write capability for as long as the returned View is in use.
func (m *MutView) RO() *View { return &m.View }

// Equal reports structural equality: same length and bit-for-bit equal
// content, regardless of backing buffers or ordering policies.
func (s *View) Equal(o *View) bool {
	if s.n != o.n {
		return false
	}
	for i := uint(0); i < s.n; i++ {
		if s.Get(i) != o.Get(i) {
			return false
		}
	}
	return true
}

// EqualBits compares the view against an ordered sequence of 0/1
// digits. Only the low-order bit of each digit is used.
func (s *View) EqualBits(bits ...byte) bool {
	if s.n != uint(len(bits)) {
		return false
	}
	for i, b := range bits {
		if s.Get(uint(i)) != (b&1 == 1) {
			return false
		}
	}
	return true
}

// Bools copies the view's content into a []bool, index 0 first.
func (s *View) Bools() []bool {
	out := make([]bool, s.n)
	for i := range out {
		out[i] = s.Get(uint(i))
	}
	return out
}
