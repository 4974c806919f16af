// Package utils provides small, generic helpers for parsing request input.
// They are independent of domain or business logic.
package utils

import (
	"strconv"
	"strings"
)

// AtoiDefault parses s as a base-10 int, returning def when s is empty or
// not a valid integer. Surrounding whitespace is not trimmed.
//
//	utils.AtoiDefault("42", 0) // 42
//	utils.AtoiDefault("", 10)  // 10
//	utils.AtoiDefault("x", 5)  // 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// SplitList splits comma-separated query values into trimmed, non-empty
// items. Several values are concatenated, so both ?numbers=1,2 and
// ?numbers=1&numbers=2 yield [1 2].
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
