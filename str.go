// Package str implements a dynamic, resizable byte string. A String owns a single
// contiguous allocation holding its payload plus one reserved slot for a zero
// terminator, so the payload is always usable as a C-string view. Capacity grows
// geometrically in powers of two and never drops below MinCapacity.
//
// All operations are byte-wise with ASCII semantics; the payload itself may hold
// arbitrary bytes, including zeros.
package str

import (
	"errors"
	"fmt"
	"math"

	"github.com/indigo-web/str/internal/capacity"
	"github.com/indigo-web/utils/uf"
)

const (
	// MinCapacity is the smallest capacity a String may have.
	MinCapacity = capacity.Min
	// NPOS is returned by search operations when no occurrence is found.
	NPOS = -1
)

// ErrNoSpace is reported when an operation cannot fit into a capacity-limited
// string.
var ErrNoSpace = errors.New("str: capacity limit exceeded")

const noLimit = math.MaxInt

// String is a mutable, exclusively-owned byte string. The zero value is not
// usable; construct instances via New, From, FromBytes or Format. Methods with
// pointer receivers may reallocate the underlying storage, which invalidates any
// previously obtained Bytes or String view.
//
// Queries tolerate a nil receiver and return their documented defaults; mutators
// on a nil receiver report failure and derivers return nil.
type String struct {
	// buf spans exactly Capacity()+1 bytes; the trailing slot holds the
	// terminator, so buf[length] == 0 at every observable point.
	buf    []byte
	length int
	limit  int
}

// New returns an empty string able to hold at least size bytes before the first
// reallocation. The actual capacity is rounded up to a power of two of at least
// MinCapacity.
func New(size int) *String {
	return NewLimited(size, noLimit)
}

// NewLimited returns an empty string whose capacity will never exceed max.
// Mutations that would require growing past the limit fail and leave the string
// untouched. A limit below the initial rounded capacity is raised to it.
func NewLimited(size, max int) *String {
	if size < 0 {
		size = 0
	}

	rounded := capacity.Round(size)
	if max < rounded {
		max = rounded
	}

	return &String{
		buf:   make([]byte, rounded+1),
		limit: max,
	}
}

// From returns a new string holding a copy of data.
func From(data string) *String {
	return FromBytes(uf.S2B(data))
}

// FromBytes returns a new string holding a copy of data.
func FromBytes(data []byte) *String {
	s := New(len(data))
	copy(s.buf, data)
	s.length = len(data)

	return s
}

// Format renders the format string the same way fmt.Sprintf does and returns the
// result as a new string.
func Format(format string, args ...any) *String {
	return FromBytes(fmt.Appendf(nil, format, args...))
}

// Clone returns an independently-owned copy, including the capacity limit.
func (s *String) Clone() *String {
	if s == nil {
		return nil
	}

	c := NewLimited(s.length, s.limit)
	copy(c.buf, s.buf[:s.length])
	c.length = s.length

	return c
}

// Len returns the number of payload bytes, excluding the terminator.
func (s *String) Len() int {
	if s == nil {
		return 0
	}

	return s.length
}

// Capacity returns the number of bytes the string can hold without reallocating,
// not counting the reserved terminator slot.
func (s *String) Capacity() int {
	if s == nil {
		return 0
	}

	return len(s.buf) - 1
}

// Empty reports whether the string holds no bytes.
func (s *String) Empty() bool {
	return s.Len() == 0
}

// At returns the byte at index, or 0 if index is out of range. Reading exactly
// at Len() observes the terminator.
func (s *String) At(index int) byte {
	if s == nil || index < 0 || index >= s.length {
		return 0
	}

	return s.buf[index]
}

// Bytes returns the payload without copying. The view is valid until the next
// mutation.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}

	return s.buf[:s.length]
}

// String returns the payload as a string without copying. As with Bytes, the
// value must not be retained across a mutation.
func (s *String) String() string {
	if s == nil {
		return ""
	}

	return uf.B2S(s.buf[:s.length])
}

// EnsureCapacity grows the storage so that at least size payload bytes fit
// without further reallocation. It reports false if the string is nil or the
// rounded capacity would exceed the limit; the string is unchanged in that case.
func (s *String) EnsureCapacity(size int) bool {
	return s.grow(size)
}

func (s *String) grow(size int) bool {
	if s == nil {
		return false
	}

	if len(s.buf)-1 >= size {
		return true
	}

	rounded := capacity.Round(size)
	if rounded > s.limit {
		return false
	}

	buf := make([]byte, rounded+1)
	copy(buf, s.buf[:s.length+1])
	s.buf = buf

	return true
}
