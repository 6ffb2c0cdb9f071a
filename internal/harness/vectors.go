package harness

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/agbru/mulcheck/internal/limb"
	"golang.org/x/crypto/chacha20"
)

// Vector is one named pair of n-limb operands.
type Vector struct {
	Name string
	A, B []limb.Word
}

// DefaultSeed seeds RandomVectors when no seed is configured.
const DefaultSeed uint64 = 0x6d756c636865636b

// DefaultRandomCount is the number of random vectors per width.
const DefaultRandomCount = 100

const (
	primeLike = 0xFFFFFFFFFFFFFFC5
	seqUp     = 0x0123456789ABCDEF
	seqDown   = 0xFEDCBA9876543210
	altA      = 0xAAAAAAAAAAAAAAAA
	alt5      = 0x5555555555555555
)

func fill(n int, w limb.Word) []limb.Word {
	v := make([]limb.Word, n)
	for i := range v {
		v[i] = w
	}
	return v
}

// single returns an n-limb value with only limb idx set to w.
func single(n, idx int, w limb.Word) []limb.Word {
	v := make([]limb.Word, n)
	v[idx] = w
	return v
}

// pow2 returns 2^k as n limbs. k must be below 64n.
func pow2(n, k int) []limb.Word {
	return single(n, k/limb.Bits, 1<<(k%limb.Bits))
}

func alternating(n int, even, odd limb.Word) []limb.Word {
	v := make([]limb.Word, n)
	for i := range v {
		if i%2 == 0 {
			v[i] = even
		} else {
			v[i] = odd
		}
	}
	return v
}

// sequential returns limbs whose hex digits shift by one nibble per limb.
func sequential(n int, base limb.Word) []limb.Word {
	v := make([]limb.Word, n)
	for i := range v {
		v[i] = bits.RotateLeft64(base, 4*i)
	}
	return v
}

// CuratedVectors returns the hand-picked scenarios scaled to width n.
func CuratedVectors(n int) []Vector {
	one, two := single(n, 0, 1), single(n, 0, 2)
	vs := []Vector{
		{"15*16", single(n, 0, 15), single(n, 0, 16)},
	}
	if n >= 2 {
		vs = append(vs, Vector{"2^64*2^65", pow2(n, 64), pow2(n, 65)})
	}

	mixedA := []limb.Word{seqDown, seqUp, 0x0FEDCBA987654321, seqUp}
	mixedB := []limb.Word{seqUp, seqDown, seqUp, 0x0FEDCBA987654321}
	a, b := make([]limb.Word, n), make([]limb.Word, n)
	for i := range a {
		a[i], b[i] = mixedA[i%len(mixedA)], mixedB[i%len(mixedB)]
	}

	return append(vs,
		Vector{"large-mixed", a, b},
		Vector{fmt.Sprintf("(2^%d-1)*2", limb.Bits*n), fill(n, limb.Max), two},
		Vector{"0*max", make([]limb.Word, n), fill(n, limb.Max)},
		Vector{"2^63*2", single(n, 0, limb.HighBit), two},
		Vector{"max*1", fill(n, limb.Max), one},
	)
}

// EdgeVectors returns the boundary corpus at width n: zeros, ones, powers of
// two, saturated limbs, bit patterns and carry-heavy operands.
func EdgeVectors(n int) []Vector {
	zero, full := make([]limb.Word, n), fill(n, limb.Max)
	one, two, four := single(n, 0, 1), single(n, 0, 2), single(n, 0, 4)
	top := single(n, n-1, limb.HighBit)

	mersenne := fill(n, limb.Max)
	mersenne[n-1] = limb.Max >> 1

	carry := make([]limb.Word, n)
	for i := 0; i < (n+1)/2; i++ {
		carry[i] = limb.Max
	}

	half := limb.Bits * n / 2
	vs := []Vector{
		{"zero*zero", zero, zero},
		{"zero*max", zero, full},
		{"max*zero", full, zero},
		{"one*one", one, one},
		{"one*two", one, two},
		{"two*four", two, four},
	}
	if n >= 2 {
		vs = append(vs, Vector{"2^64*2^64", pow2(n, 64), pow2(n, 64)})
	}
	if half != 64 {
		vs = append(vs, Vector{fmt.Sprintf("2^%d*2^%d", half, half), pow2(n, half), pow2(n, half)})
	}
	return append(vs,
		Vector{"maxlow^2", single(n, 0, limb.Max), single(n, 0, limb.Max)},
		Vector{"maxhigh^2", single(n, n-1, limb.Max), single(n, n-1, limb.Max)},
		Vector{"highbit*one", top, one},
		Vector{"highbit*two", top, two},
		Vector{"alternating", alternating(n, altA, alt5), alternating(n, alt5, altA)},
		Vector{"mersenne*2", mersenne, two},
		Vector{"carry-stress", carry, single(n, 0, limb.Max)},
		Vector{"primelike*one", fill(n, primeLike), one},
		Vector{"primelike^2", fill(n, primeLike), fill(n, primeLike)},
		Vector{"sequential", sequential(n, seqUp), sequential(n, seqDown)},
		Vector{"max*highbit", full, top},
		Vector{"max*max", full, full},
	)
}

// RandomVectors returns count pseudo-random operand pairs at width n. The
// operands are read from a ChaCha20 keystream keyed by seed and n, so the
// same arguments produce the same vectors on every platform.
func RandomVectors(n, count int, seed uint64) []Vector {
	var keyBytes [16]byte
	binary.LittleEndian.PutUint64(keyBytes[:8], seed)
	binary.LittleEndian.PutUint64(keyBytes[8:], uint64(n))
	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = keyBytes[i%len(keyBytes)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// Key and nonce sizes are constant.
		panic(err)
	}

	stream := make([]byte, 2*8*n*count)
	c.XORKeyStream(stream, stream)

	vs := make([]Vector, count)
	for i := range vs {
		a, b := make([]limb.Word, n), make([]limb.Word, n)
		for j := 0; j < n; j++ {
			a[j] = binary.LittleEndian.Uint64(stream[8*(2*n*i+j):])
			b[j] = binary.LittleEndian.Uint64(stream[8*(2*n*i+n+j):])
		}
		vs[i] = Vector{Name: fmt.Sprintf("random#%03d", i), A: a, B: b}
	}
	return vs
}
