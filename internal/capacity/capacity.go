package capacity

// Min is the smallest payload capacity a string may have. Keeping a floor avoids
// reallocation storms on short strings.
const Min = 16

// Round returns the smallest power of two that is at least n, clamped from below
// by Min. Power-of-two growth keeps appends amortized O(1) and makes the
// "is there space" check a plain comparison.
func Round(n int) int {
	result := Min
	for result < n {
		result <<= 1
	}

	return result
}
