package utils

import (
	"strconv"
	"strings"
)

// ParseID converts a path or query parameter into a positive int64 identifier.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
