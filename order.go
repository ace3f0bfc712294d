package bitview

import (
	"errors"
	"fmt"
)

// ErrUnknownOrder is returned by the Parse helpers for an unrecognized
// order name.
var ErrUnknownOrder = errors.New("bitview: unknown order name")

// ByteOrder selects which physical byte, among those a view spans, holds
// a given logical bit index. The set of implementations is closed:
// LittleEndian and BigEndian.
type ByteOrder interface {
	// findByte maps logical bit n to a byte index within a numBits-bit
	// span. Requires n < numBits.
	findByte(n, numBits uint) uint
	String() string
	sealedOrder()
}

// BitOrder assigns a position within one byte to a logical bit index.
// The set of implementations is closed: Lsb0 and Msb0.
type BitOrder interface {
	// findBit maps logical bit n to (byte index, bit-in-byte) within a
	// numBits-bit span, delegating byte selection to e.
	findBit(e ByteOrder, n, numBits uint) (byteIdx, bitIdx uint)
	String() string
	sealedOrder()
}

var (
	// Lsb0 numbers bit 0 as the low-order bit of its byte.
	Lsb0 BitOrder = lsb0{}
	// Msb0 numbers bit 0 as the high-order bit of its byte.
	Msb0 BitOrder = msb0{}

	// LittleEndian stores the least-significant logical byte at the
	// lowest address: byte index is n/8.
	LittleEndian ByteOrder = littleEndian{}
	// BigEndian stores the least-significant logical byte at the highest
	// address, so the byte scan runs reversed relative to the logical
	// index and depends on the span size.
	BigEndian ByteOrder = bigEndian{}
)

type lsb0 struct{}
type msb0 struct{}
type littleEndian struct{}
type bigEndian struct{}

func (lsb0) findBit(e ByteOrder, n, numBits uint) (uint, uint) {
	return e.findByte(n, numBits), n % 8
}

func (msb0) findBit(e ByteOrder, n, numBits uint) (uint, uint) {
	return e.findByte(n, numBits), 7 - n%8
}

func (littleEndian) findByte(n, numBits uint) uint {
	checkSpan(n, numBits)
	return n / 8
}

func (bigEndian) findByte(n, numBits uint) uint {
	checkSpan(n, numBits)
	numBytes := (numBits + 7) / 8
	return numBytes - n/8 - 1
}

func checkSpan(n, numBits uint) {
	if n >= numBits {
		panic(fmt.Sprintf("bitview: bit %d outside addressable span [0, %d)", n, numBits))
	}
}

func (lsb0) String() string         { return "Lsb0" }
func (msb0) String() string         { return "Msb0" }
func (littleEndian) String() string { return "LittleEndian" }
func (bigEndian) String() string    { return "BigEndian" }

func (lsb0) sealedOrder()         {}
func (msb0) sealedOrder()         {}
func (littleEndian) sealedOrder() {}
func (bigEndian) sealedOrder()    {}

// ParseBitOrder resolves a bit order by name, for orders carried in data
// (a file header, a protocol field) rather than known statically.
func ParseBitOrder(name string) (BitOrder, error) {
	switch name {
	case "Msb0", "msb0":
		return Msb0, nil
	case "Lsb0", "lsb0":
		return Lsb0, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// ParseByteOrder resolves a byte order by name.
func ParseByteOrder(name string) (ByteOrder, error) {
	switch name {
	case "BigEndian", "big-endian", "be":
		return BigEndian, nil
	case "LittleEndian", "little-endian", "le":
		return LittleEndian, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}
