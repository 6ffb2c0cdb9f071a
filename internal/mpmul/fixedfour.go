package mpmul

import "fmt"

// FixedFour multiplies two 2-limb operands with exactly four widening
// multiplies. The cross terms lh and hl are summed first into a 129-bit
// temporary and then folded into the middle of the product.
type FixedFour struct{}

// Name implements Strategy.
func (FixedFour) Name() string { return "fixed4" }

// Supports implements Strategy.
func (FixedFour) Supports(n int) bool { return n == 2 }

// Emit implements Strategy. It writes all four product limbs without reading
// the product buffer first.
func (FixedFour) Emit(m Machine, n int) {
	if n != 2 {
		panic(fmt.Sprintf("mpmul: fixed4 emitted for width %d", n))
	}

	m.MulWide(P0, 0, 0) // ll
	m.MulWide(P1, 0, 1) // lh
	m.MulWide(P2, 1, 0) // hl
	m.MulWide(P3, 1, 1) // hh

	// cross = lh + hl, three limbs: t0, t1 and the carry limb t2.
	m.AddCarry(Tmp(0), Lo(P1), Lo(P2), false)
	m.AddCarry(Tmp(1), Hi(P1), Hi(P2), true)
	m.AddCarry(Tmp(2), Zero, Zero, true)

	m.AddCarry(Out(0), Lo(P0), Zero, false)
	m.AddCarry(Out(1), Hi(P0), Tmp(0), false)
	m.AddCarry(Out(2), Lo(P3), Tmp(1), true)
	m.AddCarry(Out(3), Hi(P3), Tmp(2), true)
}
