package mpmul

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/limb"
)

// Strategy is a multiplication algorithm described against a Machine.
// Implementations are stateless and safe to share.
type Strategy interface {
	// Name is the registry key of the strategy.
	Name() string
	// Supports reports whether the strategy handles n-limb operands.
	Supports(n int) bool
	// Emit issues the whole n-limb multiplication on m. The product is
	// 2n limbs. Emit must only be called with a supported n.
	Emit(m Machine, n int)
}

var registry = map[string]Strategy{
	Schoolbook{}.Name(): Schoolbook{},
	FixedFour{}.Name():  FixedFour{},
}

// Lookup returns the registered strategy with the given name.
func Lookup(name string) (Strategy, error) {
	if s, ok := registry[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Strategies(), ", "))
}

// Strategies returns the registered strategy names in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Auto returns the strategy Mul uses for n-limb operands: fixed4 for n = 2
// and schoolbook for everything else.
func Auto(n int) Strategy {
	if (FixedFour{}).Supports(n) {
		return FixedFour{}
	}
	return Schoolbook{}
}

// Multiply computes out = a * b with strategy s. a and b must have the same
// length n and out must have length 2n. On a contract violation a
// *apperrors.ContractViolation is returned and out is left untouched. out
// must not share memory with a or b.
func Multiply(s Strategy, a, b, out []limb.Word) error {
	if err := checkOperands(s, a, b, out); err != nil {
		return err
	}
	s.Emit(NewExecutor(a, b, out), len(a))
	return nil
}

// Mul computes out = a * b with the strategy chosen by Auto.
func Mul(a, b, out []limb.Word) error {
	return Multiply(Auto(len(a)), a, b, out)
}

func checkOperands(s Strategy, a, b, out []limb.Word) error {
	n := len(a)
	if err := checkWidth(s, n); err != nil {
		return err
	}
	if len(b) != n {
		return &apperrors.ContractViolation{Operand: "b", Want: n, Got: len(b)}
	}
	if len(out) != 2*n {
		return &apperrors.ContractViolation{Operand: "out", Want: 2 * n, Got: len(out)}
	}
	if limb.Overlap(out, a) || limb.Overlap(out, b) {
		return &apperrors.ContractViolation{Operand: "out", Want: 2 * n, Got: len(out), Cause: apperrors.ErrAliasedOutput}
	}
	return nil
}

func checkWidth(s Strategy, n int) error {
	if n < 1 || !s.Supports(n) {
		return &apperrors.ContractViolation{
			Operand: "width",
			Got:     n,
			Cause:   fmt.Errorf("%w for %s", apperrors.ErrUnsupportedWidth, s.Name()),
		}
	}
	return nil
}
