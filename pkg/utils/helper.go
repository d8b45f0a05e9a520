package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value. Non-numeric and
// non-positive input both fall back to the default, so query parameters
// like page=-3 or limit=abc never reach the offset arithmetic.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
