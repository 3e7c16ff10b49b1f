package str

import "github.com/indigo-web/str/internal/ascii"

// Transformers rewrite the payload in place. Only SnakeCase may need to grow the
// allocation; everything else fits in the existing one, as the results never get
// longer than the input.

// ToLower lowercases every ASCII letter.
func (s *String) ToLower() {
	if s == nil {
		return
	}

	for i := 0; i < s.length; i++ {
		s.buf[i] = ascii.ToLower(s.buf[i])
	}
}

// ToUpper uppercases every ASCII letter.
func (s *String) ToUpper() {
	if s == nil {
		return
	}

	for i := 0; i < s.length; i++ {
		s.buf[i] = ascii.ToUpper(s.buf[i])
	}
}

// SnakeCase lowercases every uppercase letter and inserts an underscore before
// each one that isn't at the start. Uppercase runs are split letter by letter:
// "HTTPServer" becomes "h_t_t_p_server". Reports false if an insertion is
// refused by the capacity limit.
func (s *String) SnakeCase() (ok bool) {
	if s == nil {
		return false
	}

	for i := 0; i < s.length; i++ {
		if !ascii.IsUpper(s.buf[i]) {
			continue
		}

		s.buf[i] = ascii.ToLower(s.buf[i])
		if i > 0 {
			if !s.Insert(i, "_") {
				return false
			}
			// step past the underscore so the same letter isn't revisited
			i++
		}
	}

	return true
}

// CamelCase collapses space- and underscore-separated words into camelCase: the
// first byte is forced lowercase, each byte following a separator run is
// uppercased, and everything else is lowercased. Separators are dropped, so the
// result shrinks by their count.
func (s *String) CamelCase() {
	if s == nil || s.length == 0 {
		return
	}

	read, write := 0, 0
	capitalizeNext := false

	s.buf[write] = ascii.ToLower(s.buf[read])
	write++
	read++

	for read < s.length {
		c := s.buf[read]
		read++

		switch {
		case c == ' ' || c == '_':
			capitalizeNext = true
		case capitalizeNext:
			s.buf[write] = ascii.ToUpper(c)
			write++
			capitalizeNext = false
		default:
			s.buf[write] = ascii.ToLower(c)
			write++
		}
	}

	s.length = write
	s.buf[write] = 0
}

// PascalCase works like CamelCase but starts every word uppercased, including
// the first. An uppercase byte directly followed by a lowercase one is treated
// as an embedded word start and kept as-is.
func (s *String) PascalCase() {
	if s == nil || s.length == 0 {
		return
	}

	read, write := 0, 0
	newWord := true

	for read < s.length {
		c := s.buf[read]
		read++

		switch {
		case c == ' ' || c == '_':
			newWord = true
		case newWord:
			s.buf[write] = ascii.ToUpper(c)
			write++
			newWord = false
		case ascii.IsUpper(c) && read < s.length && ascii.IsLower(s.buf[read]):
			s.buf[write] = c
			write++
		default:
			s.buf[write] = ascii.ToLower(c)
			write++
		}
	}

	s.length = write
	s.buf[write] = 0
}

// Trim removes leading and trailing ASCII whitespace.
func (s *String) Trim() {
	if s == nil || s.length == 0 {
		return
	}

	start, end := 0, s.length
	for start < end && ascii.IsSpace(s.buf[start]) {
		start++
	}
	for end > start && ascii.IsSpace(s.buf[end-1]) {
		end--
	}

	s.length = end - start
	copy(s.buf, s.buf[start:end])
	s.buf[s.length] = 0
}

// LTrim removes leading ASCII whitespace.
func (s *String) LTrim() {
	if s == nil || s.length == 0 {
		return
	}

	start := 0
	for start < s.length && ascii.IsSpace(s.buf[start]) {
		start++
	}

	s.length -= start
	copy(s.buf, s.buf[start:start+s.length])
	s.buf[s.length] = 0
}

// RTrim removes trailing ASCII whitespace.
func (s *String) RTrim() {
	if s == nil || s.length == 0 {
		return
	}

	end := s.length
	for end > 0 && ascii.IsSpace(s.buf[end-1]) {
		end--
	}

	s.length = end
	s.buf[end] = 0
}
