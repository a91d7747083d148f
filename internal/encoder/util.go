package encoder

import "math/bits"

// ilog2 returns floor(log2(n)) for n >= 1.
func ilog2(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
