// Package polar implements angle arithmetic on the [0, 2π) circle used for
// camera yaw and pitch.
package polar

import "math"

const (
	Pi    float32 = math.Pi
	TwoPi float32 = 2 * math.Pi
)

// Normalize wraps any finite angle into [0, 2π).
func Normalize(a float32) float32 {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	n := float32(r)
	// float32(2π) rounds above the real 2π, so values just below it can land on it
	if n >= TwoPi {
		return 0
	}
	return n
}

// Distance returns the length of the shorter arc between a and b, in [0, π].
func Distance(a, b float32) float32 {
	d := Normalize(a) - Normalize(b)
	if d < 0 {
		d = -d
	}
	if d > Pi {
		return TwoPi - d
	}
	return d
}

// StepToward moves current toward target by at most maxDelta along the
// shorter arc. When the remaining distance fits in maxDelta the result is
// exactly target, so repeated calls never overshoot.
//
// At a distance of exactly π both arcs are equal; the step then goes the
// non-wrapping way, i.e. up when target > current and down otherwise.
func StepToward(current, target, maxDelta float32) float32 {
	current, target = Normalize(current), Normalize(target)
	if Distance(current, target) <= maxDelta {
		return target
	}
	if maxDelta <= 0 {
		return current
	}

	var plus bool
	if target >= current {
		plus = target-current <= Pi
	} else {
		plus = current-target > Pi
	}

	if plus {
		return Normalize(current + maxDelta)
	}
	return Normalize(current - maxDelta)
}
