package lang

import "math"

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(a, 0) == |a|.
func GCD(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns |a*b| / GCD(a, b), or 0 when either operand is 0 or the
// result does not fit in an int64.
func LCM(a, b int64) int64 {
	m, _ := lcmChecked(a, b)
	return m
}

func lcmChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	m, ok := mulChecked(abs64(a/GCD(a, b)), abs64(b))
	if !ok {
		return 0, false
	}
	return m, true
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func addChecked(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

// maxExact bounds the integers a float64 represents without loss.
const maxExact = 1 << 53

func isIntegral(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= maxExact
}
