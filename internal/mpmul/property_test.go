package mpmul

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/agbru/mulcheck/internal/limb"
	"github.com/agbru/mulcheck/internal/oracle"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func product(t *testing.T, s Strategy, a, b []limb.Word) []limb.Word {
	out := make([]limb.Word, 2*len(a))
	if err := Multiply(s, a, b, out); err != nil {
		t.Fatalf("%s: %v", s.Name(), err)
	}
	return out
}

func equal(x, y []limb.Word) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func TestSchoolbook_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, n := range []int{1, 2, 3, 4, 8} {
		operand := gen.SliceOfN(n, gen.UInt64())

		properties.Property(fmt.Sprintf("exact at width %d", n), prop.ForAll(
			func(a, b []uint64) bool {
				want := new(big.Int).Mul(oracle.ToBig(a), oracle.ToBig(b))
				return oracle.ToBig(product(t, Schoolbook{}, a, b)).Cmp(want) == 0
			},
			operand, operand,
		))

		properties.Property(fmt.Sprintf("commutative at width %d", n), prop.ForAll(
			func(a, b []uint64) bool {
				return equal(product(t, Schoolbook{}, a, b), product(t, Schoolbook{}, b, a))
			},
			operand, operand,
		))

		properties.Property(fmt.Sprintf("identity and zero at width %d", n), prop.ForAll(
			func(a []uint64) bool {
				one := make([]limb.Word, n)
				one[0] = 1
				zero := make([]limb.Word, n)

				id := product(t, Schoolbook{}, a, one)
				z := product(t, Schoolbook{}, a, zero)
				return equal(id[:n], a) && equal(id[n:], zero) && equal(z, make([]limb.Word, 2*n))
			},
			operand,
		))
	}

	properties.TestingRun(t)
}

func TestFixedFour_EquivalentToSchoolbook(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	// Bias limbs towards the values that exercise carries.
	word := gen.OneGenOf(
		gen.UInt64(),
		gen.Const(uint64(0)),
		gen.Const(limb.Max),
		gen.Const(limb.HighBit),
		gen.UInt64Range(limb.Max-16, limb.Max),
	)
	operand := gen.SliceOfN(2, word)

	properties.Property("fixed4 == schoolbook", prop.ForAll(
		func(a, b []uint64) bool {
			return equal(product(t, FixedFour{}, a, b), product(t, Schoolbook{}, a, b))
		},
		operand, operand,
	))

	properties.TestingRun(t)
}
