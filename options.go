package bitview

type viewConfig struct {
	bitOrd  BitOrder
	byteOrd ByteOrder
	numBits uint
}

// Option configures view construction.
type Option func(*viewConfig)

// WithBitOrder selects the bit-within-byte policy (default Lsb0).
func WithBitOrder(o BitOrder) Option {
	return func(c *viewConfig) { c.bitOrd = o }
}

// WithByteOrder selects the byte-within-span policy (default BigEndian).
func WithByteOrder(o ByteOrder) Option {
	return func(c *viewConfig) { c.byteOrd = o }
}

// WithNumBits sets the view's logical length in bits. It must not
// exceed the buffer capacity. A length of 0 over a writable buffer is
// the starting point for Push.
func WithNumBits(n uint) Option {
	return func(c *viewConfig) { c.numBits = n }
}
