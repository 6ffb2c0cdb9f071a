package mpmul

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrConcurrentAccumulate is the panic value raised when an Accumulator
	// is entered while another Accumulate call is still in progress.
	ErrConcurrentAccumulate = errors.New("mpmul: concurrent use of accumulator")

	// ErrCarryOverflow is the panic value raised when a carry ripples past
	// the most significant product limb.
	ErrCarryOverflow = errors.New("mpmul: carry out of product buffer")
)

// Accumulator adds partial products into the product buffer of a Machine.
// It is owned by a single strategy pass.
type Accumulator struct {
	m    Machine
	size int
	busy atomic.Bool
}

// NewAccumulator returns an accumulator over a product buffer of size limbs.
func NewAccumulator(m Machine, size int) *Accumulator {
	return &Accumulator{m: m, size: size}
}

// Size returns the number of product limbs.
func (acc *Accumulator) Size() int { return acc.size }

// Zero clears every product limb.
func (acc *Accumulator) Zero() {
	for k := 0; k < acc.size; k++ {
		acc.m.AddCarry(Out(k), Zero, Zero, false)
	}
}

// Accumulate adds the pair p into the product at limb offset: p.lo into
// limb offset, p.hi plus carry into limb offset+1, and then the carry into
// every higher limb. When the machine reports its carry, the ripple stops
// as soon as the carry is clear.
func (acc *Accumulator) Accumulate(offset int, p Pair) {
	if !acc.busy.CompareAndSwap(false, true) {
		panic(ErrConcurrentAccumulate)
	}
	defer acc.busy.Store(false)

	if offset < 0 || offset+1 >= acc.size {
		panic(fmt.Sprintf("mpmul: accumulate offset %d out of range for %d-limb product", offset, acc.size))
	}

	m := acc.m
	m.AddCarry(Out(offset), Out(offset), Lo(p), false)
	m.AddCarry(Out(offset+1), Out(offset+1), Hi(p), true)

	cr, live := m.(CarryReporter)
	for k := offset + 2; k < acc.size; k++ {
		if live && !cr.CarryOut() {
			return
		}
		m.AddCarry(Out(k), Out(k), Zero, true)
	}
	if live && cr.CarryOut() {
		panic(ErrCarryOverflow)
	}
}
