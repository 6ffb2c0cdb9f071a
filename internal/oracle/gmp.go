//go:build gmp

package oracle

import (
	"math/big"

	"github.com/ncw/gmp"
)

// GMP is the GNU MP oracle. It is only available in builds with the gmp tag.
type GMP struct{}

func init() { Register(GMP{}) }

// Name implements Oracle.
func (GMP) Name() string { return "gmp" }

// Mul implements Oracle. Operands cross the cgo boundary as big-endian bytes.
func (GMP) Mul(a, b *big.Int) *big.Int {
	x := new(gmp.Int).SetBytes(a.Bytes())
	y := new(gmp.Int).SetBytes(b.Bytes())
	z := new(gmp.Int).Mul(x, y)
	return new(big.Int).SetBytes(z.Bytes())
}
