package lattice

// Digits decomposes n into its decimal digits, most significant first.
// Digits(0) returns [0]. The result never has leading zeros for n > 0.
func Digits(n uint64) []int {
	if n == 0 {
		return []int{0}
	}
	var buf [20]int // enough for MaxUint64
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = int(n % 10)
		n /= 10
	}
	out := make([]int, len(buf)-i)
	copy(out, buf[i:])
	return out
}

// DigitSum returns the sum of the decimal digits of n. For operands a and b
// the scene contains exactly DigitSum(a) * DigitSum(b) intersections, as
// long as the segment half-length spans the layout.
func DigitSum(n uint64) int {
	return digitSliceSum(Digits(n))
}
