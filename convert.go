package bitview

import "fmt"

// FromBits builds an owned, minimally-sized mutable view from an
// ordered list of 0/1 digits. Only the low-order bit of each digit is
// used, so just write 0 or 1. Policies are the defaults.
func FromBits(bits ...byte) *MutView {
	buf := make([]byte, (len(bits)+7)/8)
	m := NewMut(buf, WithNumBits(uint(len(bits))))
	for i, b := range bits {
		m.Set(uint(i), b&1 == 1)
	}
	return m
}

// FromUint8 builds an owned 8-bit view of v, bit 0 the least
// significant.
func FromUint8(v uint8) *MutView { return fromUint(uint64(v), 8) }

// FromUint16 builds an owned 16-bit view of v.
func FromUint16(v uint16) *MutView { return fromUint(uint64(v), 16) }

// FromUint32 builds an owned 32-bit view of v.
func FromUint32(v uint32) *MutView { return fromUint(uint64(v), 32) }

// FromUint64 builds an owned 64-bit view of v.
func FromUint64(v uint64) *MutView { return fromUint(v, 64) }

func fromUint(v uint64, width uint) *MutView {
	m := NewMut(make([]byte, width/8))
	for i := uint(0); v != 0; i++ {
		m.set(i, v&1 == 1)
		v >>= 1
	}
	return m
}

// Uint8 converts the view into a uint8; see Uint64.
func (s *View) Uint8() (uint8, error) {
	v, err := s.toUint(8)
	return uint8(v), err
}

// Uint16 converts the view into a uint16; see Uint64.
func (s *View) Uint16() (uint16, error) {
	v, err := s.toUint(16)
	return uint16(v), err
}

// Uint32 converts the view into a uint32; see Uint64.
func (s *View) Uint32() (uint32, error) {
	v, err := s.toUint(32)
	return uint32(v), err
}

// Uint64 converts the view into a uint64, filling from logical bit 0 as
// the least-significant bit upward. The conversion fails with
// ErrOverflow when a set bit lies at or beyond the requested width; a
// long view whose high bits are all zero still fits.
func (s *View) Uint64() (uint64, error) { return s.toUint(64) }

func (s *View) toUint(width uint) (uint64, error) {
	var v uint64
	for i := uint(0); i < s.n; i++ {
		if !s.Get(i) {
			continue
		}
		if i >= width {
			return 0, fmt.Errorf("%w: bit %d set, width %d", ErrOverflow, i, width)
		}
		v |= 1 << i
	}
	return v, nil
}
