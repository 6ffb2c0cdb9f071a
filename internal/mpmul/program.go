package mpmul

import (
	"bufio"
	"fmt"
	"io"

	"github.com/agbru/mulcheck/internal/limb"
)

// Program is the recorded instruction sequence of one strategy at one width.
// It is the boundary handed to emission backends.
type Program struct {
	Strategy string
	N        int
	Instrs   []Instr
}

// Stats counts the instructions of a Program by opcode.
type Stats struct {
	MulWide  int
	AddCarry int
}

// Compile records strategy s at width n.
func Compile(s Strategy, n int) (*Program, error) {
	if err := checkWidth(s, n); err != nil {
		return nil, err
	}
	r := NewRecorder()
	s.Emit(r, n)
	return &Program{Strategy: s.Name(), N: n, Instrs: r.Instrs()}, nil
}

// Stats returns the instruction counts of p.
func (p *Program) Stats() Stats {
	var st Stats
	for _, in := range p.Instrs {
		switch in.Op {
		case OpMulWide:
			st.MulWide++
		case OpAddCarry:
			st.AddCarry++
		}
	}
	return st
}

// Exec replays p on an Executor over a, b and out. Recorded carry ripples
// are replayed in full.
func (p *Program) Exec(a, b, out []limb.Word) error {
	if err := checkOperands(programStrategy{p}, a, b, out); err != nil {
		return err
	}
	e := NewExecutor(a, b, out)
	for _, in := range p.Instrs {
		switch in.Op {
		case OpMulWide:
			e.MulWide(in.Pair, in.I, in.J)
		case OpAddCarry:
			e.AddCarry(in.Dst, in.X, in.Y, in.CarryIn)
		}
	}
	return nil
}

// WriteListing renders p as a target-neutral assembly listing. mulw loads a
// register pair, adds starts a carry chain and adcs continues one.
func (p *Program) WriteListing(w io.Writer) error {
	bw := bufio.NewWriter(w)
	st := p.Stats()
	fmt.Fprintf(bw, "; %s %dx%d -> %d limbs\n", p.Strategy, p.N, p.N, 2*p.N)
	fmt.Fprintf(bw, "; %d mulw, %d adds/adcs\n", st.MulWide, st.AddCarry)
	for _, in := range p.Instrs {
		switch in.Op {
		case OpMulWide:
			fmt.Fprintf(bw, "\tmulw\tp%d, a[%d], b[%d]\n", in.Pair, in.I, in.J)
		case OpAddCarry:
			mn := "adds"
			if in.CarryIn {
				mn = "adcs"
			}
			fmt.Fprintf(bw, "\t%s\t%s, %s, %s\n", mn, in.Dst, in.X, in.Y)
		}
	}
	return bw.Flush()
}

// programStrategy lets a Program reuse the operand checks of Multiply.
type programStrategy struct{ p *Program }

func (ps programStrategy) Name() string        { return ps.p.Strategy }
func (ps programStrategy) Supports(n int) bool { return n == ps.p.N }
func (ps programStrategy) Emit(Machine, int)   {}
