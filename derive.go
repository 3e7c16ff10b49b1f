package str

import (
	"iter"
	"strings"
)

// Derivers leave the source untouched and return newly-owned strings. They
// return nil on nil sources and on arguments that make no sense, like an empty
// pattern to replace.

// Substr returns a copy of up to count bytes starting at index start. The count
// is clamped to the remaining tail. The start must address an existing byte.
func (s *String) Substr(start, count int) *String {
	if s == nil || start < 0 || start >= s.length || count < 0 {
		return nil
	}

	if count > s.length-start {
		count = s.length - start
	}

	return FromBytes(s.buf[start : start+count])
}

// Replace returns a copy with every non-overlapping occurrence of old replaced
// by new. The name is kept for historical compatibility; it has always replaced
// all occurrences, exactly like ReplaceAll. Use ReplaceFirst for a single
// replacement.
func (s *String) Replace(old, new string) *String {
	return s.replace(old, new, -1)
}

// ReplaceAll returns a copy with every non-overlapping occurrence of old
// replaced by new.
func (s *String) ReplaceAll(old, new string) *String {
	return s.replace(old, new, -1)
}

// ReplaceFirst returns a copy with only the first occurrence of old replaced.
func (s *String) ReplaceFirst(old, new string) *String {
	return s.replace(old, new, 1)
}

func (s *String) replace(old, new string, n int) *String {
	if s == nil || len(old) == 0 {
		return nil
	}

	return From(strings.Replace(s.String(), old, new, n))
}

// Split cuts the string around every occurrence of delim and returns the pieces
// as independently-owned strings. Empty pieces between adjacent delimiters and
// at either end are preserved. Without any occurrence the result is a single
// copy of the whole string. An empty delim yields nil.
func (s *String) Split(delim string) []*String {
	if s == nil || len(delim) == 0 {
		return nil
	}

	pieces := strings.Split(s.String(), delim)
	result := make([]*String, len(pieces))
	for i, piece := range pieces {
		result[i] = From(piece)
	}

	return result
}

// SplitSeq returns an iterator over the pieces of Split, produced lazily while
// walking the payload. The source must not be mutated during iteration.
func (s *String) SplitSeq(delim string) iter.Seq[*String] {
	return func(yield func(*String) bool) {
		if s == nil || len(delim) == 0 {
			return
		}

		remaining := s.String()
		for {
			idx := strings.Index(remaining, delim)
			if idx == -1 {
				yield(From(remaining))
				return
			}

			if !yield(From(remaining[:idx])) {
				return
			}

			remaining = remaining[idx+len(delim):]
		}
	}
}

// Join concatenates the payloads of elems in order, putting delim between each
// adjacent pair, and returns the result as a new string. Returns nil if elems
// is empty or contains a nil element.
func Join(elems []*String, delim string) *String {
	if len(elems) == 0 {
		return nil
	}

	total := len(delim) * (len(elems) - 1)
	for _, elem := range elems {
		if elem == nil {
			return nil
		}

		total += elem.length
	}

	joined := New(total)
	dst := joined.buf
	for i, elem := range elems {
		if i > 0 {
			dst = dst[copy(dst, delim):]
		}

		dst = dst[copy(dst, elem.Bytes()):]
	}

	joined.length = total
	joined.buf[total] = 0

	return joined
}

// Reversed returns a new string holding the payload bytes in reverse order.
func (s *String) Reversed() *String {
	if s == nil {
		return nil
	}

	reversed := New(s.length)
	for i := 0; i < s.length; i++ {
		reversed.buf[i] = s.buf[s.length-1-i]
	}

	reversed.length = s.length
	reversed.buf[s.length] = 0

	return reversed
}

// Reverse reverses the payload in place.
func (s *String) Reverse() {
	if s == nil {
		return
	}

	for i, j := 0, s.length-1; i < j; i, j = i+1, j-1 {
		s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
	}
}
