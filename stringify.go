package veb

import (
	"fmt"
	"strings"
)

// String returns a compact, human-readable dump of the set's members,
// e.g. "veb/24{0 123 1337}", in the vein of bart's own Table.String
// tree dump: a debugging aid, not a stable encoding.
func (s *Set) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "veb/%d{", s.lv.bits)
	first := true
	for x := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%d", x)
	}
	b.WriteByte('}')
	return b.String()
}
