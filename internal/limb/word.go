package limb

import (
	"math/bits"
	"unsafe"
)

// Word is a single 64-bit limb.
type Word = uint64

const (
	// Bits is the width of a limb in bits.
	Bits = 64
	// Max is the limb with every bit set.
	Max Word = 1<<Bits - 1
	// HighBit is the limb with only its most significant bit set.
	HighBit Word = 1 << (Bits - 1)
)

// MulWide returns the full 128-bit product of a and b split into halves,
// so that a*b = hi<<64 + lo. It is exact for every input.
func MulWide(a, b Word) (lo, hi Word) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// AddWithCarry computes a + b + carryIn. The sum is returned modulo 2^64 and
// carryOut is 1 iff the true sum reached 2^64.
//
// carryIn must be 0 or 1; any other value is a caller error.
func AddWithCarry(a, b, carryIn Word) (sum, carryOut Word) {
	return bits.Add64(a, b, carryIn)
}

// AddVec computes z = x + y over equal-length limb vectors and returns the
// carry out of the most significant limb. z may alias x or y.
func AddVec(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = AddWithCarry(x[i], y[i], c)
	}
	return c
}

// AddWord adds the single limb y into z starting at limb 0 and ripples the
// carry upwards until it is absorbed. The carry out of the top limb is
// returned.
func AddWord(z []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && c != 0; i++ {
		z[i], c = AddWithCarry(z[i], c, 0)
	}
	return c
}

// Overlap reports whether x and y share at least one limb of memory.
func Overlap(x, y []Word) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	const size = unsafe.Sizeof(Word(0))
	xs := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	ys := uintptr(unsafe.Pointer(unsafe.SliceData(y)))
	return xs < ys+uintptr(len(y))*size && ys < xs+uintptr(len(x))*size
}
