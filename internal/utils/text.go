package util

import (
	"strconv"
	"unicode/utf8"
)

// Truncate cuts s to at most n characters. The bool reports whether anything
// was removed.
func Truncate(s string, n int) (string, bool) {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], true
		}
		count++
	}
	return s, false
}

func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
