// Package core holds small numeric and slice helpers shared by the filter
// packages.
package core

import "math"

// IsFinite reports whether every value is neither NaN nor ±Inf.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// CeilDiv returns ceil(a/b) for a >= 0 and b > 0.
func CeilDiv(a, b int) int {
	if a == 0 {
		return 0
	}

	return (a-1)/b + 1
}
