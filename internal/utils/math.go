package utils

// GCD returns the greatest common divisor of |m| and |n|.
// GCD(0, 0) == 0; otherwise the result is positive.
func GCD(m, n int64) uint64 {
	p, q := m, n
	if p < 0 {
		p = -p
	}
	if q < 0 {
		q = -q
	}
	for p != 0 {
		p, q = q%p, p
	}
	return uint64(q)
}
