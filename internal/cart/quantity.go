package cart

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// ParseQuantity reads the leading integer of s, ignoring anything after it
// ("3 un" is 3, "2.7" is 2). ok is false when s does not start with a number.
func ParseQuantity(s string) (n int, ok bool) {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, false
	}
	return n, true
}

// AddQuantity coerces user input for an add: anything unparsable or below 1
// becomes 1.
func AddQuantity(s string) int {
	n, ok := ParseQuantity(s)
	if !ok || n < 1 {
		return 1
	}
	return n
}
