package mpmul

import "github.com/agbru/mulcheck/internal/limb"

// Executor is a Machine that runs every instruction immediately against
// caller-owned slices. Its registers live in fixed-size arrays and it never
// allocates. An Executor serves a single multiply call; the carry flag is not
// meant to survive into another one.
type Executor struct {
	a, b, out []limb.Word
	pairs     [NumPairs][2]limb.Word
	tmps      [NumTmps]limb.Word
	carry     limb.Word
}

// NewExecutor returns an executor reading operands a and b and writing the
// product into out. Lengths are not checked here; use Multiply for that.
func NewExecutor(a, b, out []limb.Word) *Executor {
	return &Executor{a: a, b: b, out: out}
}

// MulWide implements Machine.
func (e *Executor) MulWide(p Pair, i, j int) {
	e.pairs[p][0], e.pairs[p][1] = limb.MulWide(e.a[i], e.b[j])
}

// AddCarry implements Machine.
func (e *Executor) AddCarry(dst, x, y Loc, carryIn bool) {
	var c limb.Word
	if carryIn {
		c = e.carry
	}
	var sum limb.Word
	sum, e.carry = limb.AddWithCarry(e.load(x), e.load(y), c)
	e.store(dst, sum)
}

// CarryOut reports the carry produced by the most recent AddCarry.
func (e *Executor) CarryOut() bool { return e.carry != 0 }

func (e *Executor) load(l Loc) limb.Word {
	switch l.Kind {
	case KindZero:
		return 0
	case KindOut:
		return e.out[l.Index]
	case KindLo:
		return e.pairs[l.Index][0]
	case KindHi:
		return e.pairs[l.Index][1]
	case KindTmp:
		return e.tmps[l.Index]
	}
	panic("mpmul: load from invalid location " + l.String())
}

func (e *Executor) store(l Loc, v limb.Word) {
	switch l.Kind {
	case KindOut:
		e.out[l.Index] = v
	case KindLo:
		e.pairs[l.Index][0] = v
	case KindHi:
		e.pairs[l.Index][1] = v
	case KindTmp:
		e.tmps[l.Index] = v
	default:
		panic("mpmul: store to read-only location " + l.String())
	}
}
