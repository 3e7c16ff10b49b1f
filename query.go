package str

import (
	"bytes"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

// Compare orders two strings lexicographically by payload bytes, returning -1,
// 0 or 1. A nil string sorts before any non-nil one; two nils are equal.
func (s *String) Compare(other *String) int {
	if s == nil || other == nil {
		switch {
		case s == other:
			return 0
		case s == nil:
			return -1
		default:
			return 1
		}
	}

	return bytes.Compare(s.Bytes(), other.Bytes())
}

// Equals reports whether both strings hold identical payloads. Two nils are
// considered equal.
func (s *String) Equals(other *String) bool {
	return s.Compare(other) == 0
}

// EqualsFold reports whether both payloads are equal under ASCII
// case-insensitive comparison.
func (s *String) EqualsFold(other *String) bool {
	if s == nil || other == nil {
		return s == other
	}

	return strcomp.EqualFold(s.String(), other.String())
}

// StartsWith reports whether the payload begins with prefix. Every string
// starts with the empty prefix.
func (s *String) StartsWith(prefix string) bool {
	if s == nil {
		return false
	}

	return strings.HasPrefix(s.String(), prefix)
}

// EndsWith reports whether the payload ends with suffix.
func (s *String) EndsWith(suffix string) bool {
	if s == nil {
		return false
	}

	return strings.HasSuffix(s.String(), suffix)
}

// Find returns the index of the first occurrence of sub, or NPOS. The empty
// substring is found at index 0.
func (s *String) Find(sub string) int {
	if s == nil {
		return NPOS
	}

	if idx := strings.Index(s.String(), sub); idx != -1 {
		return idx
	}

	return NPOS
}

// RFind returns the index of the last occurrence of sub, or NPOS. Unlike Find,
// the empty substring is never found.
func (s *String) RFind(sub string) int {
	if s == nil || len(sub) == 0 {
		return NPOS
	}

	if idx := strings.LastIndex(s.String(), sub); idx != -1 {
		return idx
	}

	return NPOS
}
