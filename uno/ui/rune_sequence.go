package ui

const initialRune = 'A'

// labels names n options A, B, C and so on; past Z it goes on with AA, AB.
func labels(n int) []string {
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, label(i))
	}
	return result
}

func label(i int) string {
	if i < 26 {
		return string(rune(initialRune + i))
	}
	return label(i/26-1) + label(i%26)
}
