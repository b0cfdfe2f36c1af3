// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1], scales it by 32767 and truncates
// toward zero. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps -1 and 1 symmetric
	return int16(x * math.MaxInt16)
}

// Float64ToInt16 is Float32ToInt16 computed in float64 precision.
func Float64ToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * math.MaxInt16)
}

// Int32ToInt16 clamps x to the int16 range and then floor-divides it by 65536.
//
// The clamp happens before the division, so every non-negative input lands
// on 0 and every negative input lands on -1.
func Int32ToInt16(x int32) int16 {
	if x > math.MaxInt16 {
		x = math.MaxInt16
	} else if x < math.MinInt16 {
		x = math.MinInt16
	}

	// arithmetic shift floors, unlike / which truncates
	return int16(x >> 16)
}
