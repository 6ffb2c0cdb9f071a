package mpmul

import "fmt"

// Pair names a register pair holding the low and high halves of one
// widening multiply.
type Pair int

// The register pairs available to a strategy.
const (
	P0 Pair = iota
	P1
	P2
	P3

	// NumPairs is the size of the pair register file.
	NumPairs = 4
	// NumTmps is the number of scalar temporaries.
	NumTmps = 4
)

// LocKind distinguishes the storage classes a Loc can refer to.
type LocKind uint8

const (
	// KindZero is the constant zero. It can be read but never written.
	KindZero LocKind = iota
	// KindOut is a limb of the product buffer.
	KindOut
	// KindLo is the low half of a register pair.
	KindLo
	// KindHi is the high half of a register pair.
	KindHi
	// KindTmp is a scalar temporary.
	KindTmp
)

// Loc is an operand or destination of AddCarry.
type Loc struct {
	Kind  LocKind
	Index int
}

// Zero is the read-only constant zero location.
var Zero = Loc{Kind: KindZero}

// Out returns the location of product limb k.
func Out(k int) Loc { return Loc{Kind: KindOut, Index: k} }

// Lo returns the low half of register pair p.
func Lo(p Pair) Loc { return Loc{Kind: KindLo, Index: int(p)} }

// Hi returns the high half of register pair p.
func Hi(p Pair) Loc { return Loc{Kind: KindHi, Index: int(p)} }

// Tmp returns scalar temporary k.
func Tmp(k int) Loc { return Loc{Kind: KindTmp, Index: k} }

func (l Loc) String() string {
	switch l.Kind {
	case KindZero:
		return "zr"
	case KindOut:
		return fmt.Sprintf("out[%d]", l.Index)
	case KindLo:
		return fmt.Sprintf("p%d.lo", l.Index)
	case KindHi:
		return fmt.Sprintf("p%d.hi", l.Index)
	case KindTmp:
		return fmt.Sprintf("t%d", l.Index)
	default:
		return fmt.Sprintf("loc(%d,%d)", l.Kind, l.Index)
	}
}

// Machine is the instruction boundary every strategy is written against.
//
//go:generate mockgen -source=machine.go -destination=mocks/mock_machine.go -package=mocks
type Machine interface {
	// MulWide loads the full product A[i]*B[j] into register pair p.
	MulWide(p Pair, i, j int)
	// AddCarry stores x + y into dst, adding the current carry flag when
	// carryIn is set. The carry flag is replaced by the carry out.
	AddCarry(dst, x, y Loc, carryIn bool)
}

// CarryReporter is implemented by machines that execute instructions as they
// are issued and can therefore report the live carry flag.
type CarryReporter interface {
	CarryOut() bool
}
