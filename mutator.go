package str

import (
	"fmt"
	"strings"

	"github.com/indigo-web/utils/uf"
)

// Mutators either fully apply or fully back off: when growth is refused by the
// capacity limit, the payload, length and capacity are left exactly as they were.

// Append copies data to the end of the string.
func (s *String) Append(data string) (ok bool) {
	if s == nil || !s.grow(s.length+len(data)) {
		return false
	}

	copy(s.buf[s.length:], data)
	s.length += len(data)
	s.buf[s.length] = 0

	return true
}

// AppendBytes copies data to the end of the string.
func (s *String) AppendBytes(data []byte) (ok bool) {
	return s.Append(uf.B2S(data))
}

// AppendByte appends a single byte.
func (s *String) AppendByte(c byte) (ok bool) {
	if s == nil || !s.grow(s.length+1) {
		return false
	}

	s.buf[s.length] = c
	s.length++
	s.buf[s.length] = 0

	return true
}

// AppendFormat renders the format string as fmt.Sprintf does and appends the
// result. The rendered size is known before the string is touched, so a refused
// growth leaves it unchanged.
func (s *String) AppendFormat(format string, args ...any) (ok bool) {
	if s == nil {
		return false
	}

	return s.AppendBytes(fmt.Appendf(nil, format, args...))
}

// Prepend copies data in front of the existing payload.
func (s *String) Prepend(data string) (ok bool) {
	if s == nil || !s.grow(s.length+len(data)) {
		return false
	}

	// shift the payload together with its terminator to make room at the front
	copy(s.buf[len(data):], s.buf[:s.length+1])
	copy(s.buf, data)
	s.length += len(data)

	return true
}

// Insert copies data into the string at index, shifting the tail right. An index
// equal to Len() appends. Out-of-range indices report failure without mutating.
func (s *String) Insert(index int, data string) (ok bool) {
	if s == nil || index < 0 || index > s.length || !s.grow(s.length+len(data)) {
		return false
	}

	copy(s.buf[index+len(data):], s.buf[index:s.length+1])
	copy(s.buf[index:], data)
	s.length += len(data)

	return true
}

// Remove deletes up to count bytes starting at index, shifting the tail left.
// A count reaching past the end truncates to the end. The index must address an
// existing byte.
func (s *String) Remove(index, count int) (ok bool) {
	if s == nil || index < 0 || index >= s.length || count < 0 {
		return false
	}

	if count > s.length-index {
		count = s.length - index
	}

	copy(s.buf[index:], s.buf[index+count:s.length+1])
	s.length -= count

	return true
}

// RemoveAll deletes every occurrence of sub and returns how many were removed.
// After each removal the scan resumes at the position the occurrence started at,
// so occurrences formed by the removal itself are matched too. An empty sub
// removes nothing.
func (s *String) RemoveAll(sub string) (removed int) {
	if s == nil || len(sub) == 0 {
		return 0
	}

	pos := 0
	for {
		idx := strings.Index(uf.B2S(s.buf[pos:s.length]), sub)
		if idx == -1 {
			return removed
		}

		pos += idx
		copy(s.buf[pos:], s.buf[pos+len(sub):s.length+1])
		s.length -= len(sub)
		removed++
	}
}

// Resize sets the length to size. Growing zero-fills the new region; shrinking
// simply truncates. The allocation is never shrunk.
func (s *String) Resize(size int) (ok bool) {
	if s == nil || size < 0 || !s.grow(size) {
		return false
	}

	for i := s.length; i < size; i++ {
		s.buf[i] = 0
	}

	s.length = size
	s.buf[size] = 0

	return true
}

// Clear drops the payload, keeping the allocation for reuse.
func (s *String) Clear() {
	if s == nil {
		return
	}

	s.length = 0
	s.buf[0] = 0
}
