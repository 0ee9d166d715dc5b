package utils

// IsSearchable reports whether q is worth walking the index for.
// Empty queries are handled by a full scan elsewhere, and anything longer
// than maxLen cannot match an indexed name, symbol or category.
// A maxLen of zero or less disables the length check.
func IsSearchable(q string, maxLen int) bool {
	if q == "" {
		return false
	}
	if maxLen > 0 && len(q) > maxLen {
		return false
	}
	return true
}

// IsRepetitive checks if a string consists of one byte repeated 3+ times,
// e.g. "aaa". The CLI uses it to flag likely keyboard noise.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}
