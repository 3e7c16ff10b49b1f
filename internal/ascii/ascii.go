// Package ascii provides byte-wise classification and case mapping. All predicates
// are strictly ASCII; bytes above 0x7f never match and pass through case mapping
// unchanged.
package ascii

func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func ToLower(c byte) byte {
	if IsUpper(c) {
		return c | 0x20
	}

	return c
}

func ToUpper(c byte) byte {
	if IsLower(c) {
		return c &^ 0x20
	}

	return c
}

// IsSpace reports whether c is one of the standard ASCII whitespace characters.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
