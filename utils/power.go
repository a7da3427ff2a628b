package utils

// NextPowerOfTwo pads x to 2^n rows, n>=1.
func NextPowerOfTwo(x int) int {
	padk := 1
	for x > (1 << padk) {
		padk++
	}
	return 1 << padk
}
