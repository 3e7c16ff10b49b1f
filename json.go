package str

import (
	"io"

	json "github.com/json-iterator/go"
)

// MarshalJSON encodes the payload as a JSON string. A nil receiver encodes as
// null.
func (s *String) MarshalJSON() ([]byte, error) {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	if s == nil {
		stream.WriteNil()
	} else {
		stream.WriteString(s.String())
	}

	if stream.Error != nil {
		return nil, stream.Error
	}

	// the stream buffer is pooled, so hand out a copy
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON replaces the payload with the decoded JSON string. The decoded
// value must fit under the capacity limit, otherwise ErrNoSpace is reported and
// the string keeps its previous payload.
func (s *String) UnmarshalJSON(data []byte) error {
	iterator := json.ConfigDefault.BorrowIterator(data)
	defer json.ConfigDefault.ReturnIterator(iterator)

	value := iterator.ReadString()
	if iterator.Error != nil && iterator.Error != io.EOF {
		return iterator.Error
	}

	if !s.grow(len(value)) {
		return ErrNoSpace
	}

	s.length = copy(s.buf, value)
	s.buf[s.length] = 0

	return nil
}
