package bitview

import (
	"fmt"
	"strings"
)

// String renders the view as '0'/'1' characters, index 0 first. This is
// the only allocating read path.
func (s *View) String() string {
	var b strings.Builder
	b.Grow(int(s.n))
	for i := uint(0); i < s.n; i++ {
		if s.Get(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// GoString drives %#v: the active order policies, the half-open bit
// range the view covers within its buffer, the rendered bits and the
// raw backing bytes.
func (s *View) GoString() string {
	return fmt.Sprintf("bitview.View{%v/%v, bits [%d, %d), %q, bytes %v}",
		s.bitOrd, s.byteOrd, s.off, s.off+s.n, s.String(), s.buf)
}
