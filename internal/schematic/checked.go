package schematic

import (
	"fmt"
	"math/bits"
)

// mustAdd and mustMul panic instead of wrapping; a wrapped sum would be
// reported as a plausible but wrong answer.
func mustAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		panic(fmt.Sprintf("schematic: sum %d + %d overflows uint64", a, b))
	}
	return sum
}

func mustMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		panic(fmt.Sprintf("schematic: ratio %d x %d overflows uint64", a, b))
	}
	return lo
}
