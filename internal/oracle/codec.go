package oracle

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/agbru/mulcheck/internal/limb"
)

var (
	// ErrNegative is returned by FromBig for negative values.
	ErrNegative = errors.New("negative value has no limb encoding")
	// ErrTooWide is returned by FromBig when a value needs more limbs than
	// requested.
	ErrTooWide = errors.New("value does not fit")
)

// ToBig decodes a little-endian limb vector. An empty vector is zero.
func ToBig(x []limb.Word) *big.Int {
	buf := make([]byte, 8*len(x))
	for i, w := range x {
		binary.BigEndian.PutUint64(buf[8*(len(x)-1-i):], w)
	}
	return new(big.Int).SetBytes(buf)
}

// FromBig encodes x as exactly n little-endian limbs.
func FromBig(x *big.Int, n int) ([]limb.Word, error) {
	if x.Sign() < 0 {
		return nil, ErrNegative
	}
	if x.BitLen() > n*limb.Bits {
		return nil, fmt.Errorf("%w: %d bits in %d limbs", ErrTooWide, x.BitLen(), n)
	}
	buf := x.FillBytes(make([]byte, 8*n))
	out := make([]limb.Word, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint64(buf[8*(n-1-i):])
	}
	return out, nil
}
