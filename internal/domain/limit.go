package domain

import (
	"strconv"
	"strings"
)

// LimitPolicy turns a raw "limit" query value into a safe row cap.
type LimitPolicy struct {
	Default int
	Max     int
}

var (
	SinceLimit = LimitPolicy{Default: 50000, Max: 100000}
	RangeLimit = LimitPolicy{Default: 100000, Max: 200000}
)

// Resolve never returns a value outside [1, Max]. Absent, non-numeric and
// non-positive input collapse to Default.
func (p LimitPolicy) Resolve(raw string) int {
	n := p.Default
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v > 0 {
		n = v
	}
	if n > p.Max {
		n = p.Max
	}
	if n < 1 {
		n = 1
	}
	return n
}
