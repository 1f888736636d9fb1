package scalar

// RoundUpPow2 returns the smallest power of two >= n. n of 0 or 1
// yields 1.
func RoundUpPow2(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	exponent := uint(0)
	n--
	for n != 0 {
		exponent++
		n >>= 1
	}
	return 1 << exponent
}

// RoundDownPow2 returns the largest power of two <= n. n of 0 yields 1.
func RoundDownPow2(n uint32) uint32 {
	exponent := uint(0)
	for n > 1 {
		exponent++
		n >>= 1
	}
	return 1 << exponent
}

// IntLog2 returns floor(log2(x)), or -1 for x == 0.
func IntLog2(x int) int {
	exp := -1
	for x != 0 {
		x >>= 1
		exp++
	}
	return exp
}
