// Package hint generates the fixed-length, prefix-free labels typed to
// select a span.
package hint

// Length returns the hint length used for n hints over an alphabet of k
// runes: the smallest L with k^L >= n, and never less than 1. All hints in
// one assignment share this length, which makes the set prefix-free (no
// string of length L is a proper prefix of another string of length L).
func Length(n, k int) int {
	length := 1
	if k < 2 {
		return length
	}
	for capacity := k; capacity < n; capacity *= k {
		length++
	}
	return length
}

// Assign returns one hint per span count, assigned in reading order. Hints
// are the first strings of the fixed length over the alphabet, enumerated
// in counting order with the first alphabet rune as the zero digit, so the
// same (n, alphabet) input always yields the same labels.
//
// maxLength caps the hint length. When n exceeds the largest count
// representable within the cap, the spans past that count get an empty
// string: still displayed, no longer selectable.
func Assign(n int, alphabet []rune, maxLength int) []string {
	if n <= 0 {
		return nil
	}
	hints := make([]string, n)

	k := len(alphabet)
	if k == 0 {
		return hints
	}
	if maxLength < 1 {
		maxLength = 1
	}

	length := Length(n, k)
	if length > maxLength {
		length = maxLength
	}

	// Count of hints representable at this length, saturating at n.
	capacity := 1
	for i := 0; i < length; i++ {
		capacity *= k
		if capacity >= n {
			capacity = n
			break
		}
	}

	digits := make([]int, length)
	buf := make([]rune, length)
	for i := 0; i < capacity && i < n; i++ {
		for d, digit := range digits {
			buf[d] = alphabet[digit]
		}
		hints[i] = string(buf)

		for d := length - 1; d >= 0; d-- {
			digits[d]++
			if digits[d] < k {
				break
			}
			digits[d] = 0
		}
	}
	return hints
}
