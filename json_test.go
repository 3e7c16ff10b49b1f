package str

import (
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		data, err := json.Marshal(From("Hello, World!"))
		require.NoError(t, err)
		require.Equal(t, `"Hello, World!"`, string(data))
	})

	t.Run("escaping", func(t *testing.T) {
		data, err := json.Marshal(From("line\n\"quoted\""))
		require.NoError(t, err)
		require.Equal(t, `"line\n\"quoted\""`, string(data))
	})

	t.Run("nil encodes as null", func(t *testing.T) {
		var s *String
		data, err := s.MarshalJSON()
		require.NoError(t, err)
		require.Equal(t, "null", string(data))
	})
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("replaces the payload", func(t *testing.T) {
		s := From("previous")
		require.NoError(t, json.Unmarshal([]byte(`"Hello, World!"`), s))
		requireInvariants(t, s)
		require.Equal(t, "Hello, World!", s.String())
	})

	t.Run("round trip", func(t *testing.T) {
		source := From("payload with spaces\tand\ttabs")
		data, err := json.Marshal(source)
		require.NoError(t, err)

		decoded := New(0)
		require.NoError(t, json.Unmarshal(data, decoded))
		require.True(t, source.Equals(decoded))
	})

	t.Run("in a struct field", func(t *testing.T) {
		type payload struct {
			Name *String `json:"name"`
		}

		decoded := payload{Name: New(0)}
		require.NoError(t, json.Unmarshal([]byte(`{"name":"indigo"}`), &decoded))
		require.Equal(t, "indigo", decoded.Name.String())
	})

	t.Run("value over the limit is refused", func(t *testing.T) {
		s := NewLimited(0, 16)
		require.True(t, s.Append("keep me"))

		err := s.UnmarshalJSON([]byte(`"this payload is far too large to fit"`))
		require.ErrorIs(t, err, ErrNoSpace)
		require.Equal(t, "keep me", s.String(), "failed decode must not mutate")
	})

	t.Run("malformed input", func(t *testing.T) {
		s := New(0)
		require.Error(t, s.UnmarshalJSON([]byte(`{not json`)))
	})
}
