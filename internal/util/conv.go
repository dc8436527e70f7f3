package util

import (
	"strconv"
	"time"
)

// ParseUintOrZero parses s as an unsigned id, returning 0 on failure.
func ParseUintOrZero(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseDate parses a "2006-01-02" date in the server's location.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}
