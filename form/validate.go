package form

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength = 2
	MinChildren   = 1
	MaxChildren   = 20
)

// ValidName trims s and accepts it when it has at least MinNameLength characters.
func ValidName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinNameLength {
		return "", false
	}
	return s, true
}

// ParseChildCount accepts an integer in [MinChildren, MaxChildren].
func ParseChildCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < MinChildren || n > MaxChildren {
		return 0, false
	}
	return n, true
}
