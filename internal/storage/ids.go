package storage

import (
	"strconv"
	"strings"
)

// NumericID leading integer of id, parsed leniently ("12", " 7", "3b" -> 3).
// Ids without a leading integer are not numeric.
func NumericID(id string) (int, bool) {
	s := strings.TrimLeft(id, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxNumericID largest numeric id among ids, floored at zero
func MaxNumericID(ids []string) int {
	max := 0
	for _, id := range ids {
		if n, ok := NumericID(id); ok && n > max {
			max = n
		}
	}
	return max
}
