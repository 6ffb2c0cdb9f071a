package mpmul

// Schoolbook is the row-major N² partial-product algorithm. It supports any
// width and always emits every partial product.
type Schoolbook struct{}

// Name implements Strategy.
func (Schoolbook) Name() string { return "schoolbook" }

// Supports implements Strategy.
func (Schoolbook) Supports(n int) bool { return n >= 1 }

// Emit implements Strategy.
//
// Each partial product A[i]*B[j] lands at offset i+j. The running sum never
// exceeds (2^(64n)-1)^2, so no carry can leave the 2n-limb buffer.
func (Schoolbook) Emit(m Machine, n int) {
	acc := NewAccumulator(m, 2*n)
	acc.Zero()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.MulWide(P0, i, j)
			acc.Accumulate(i+j, P0)
		}
	}
}
