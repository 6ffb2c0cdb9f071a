package mpmul

// Op is the opcode of a recorded instruction.
type Op uint8

const (
	// OpMulWide is a widening multiply into a register pair.
	OpMulWide Op = iota
	// OpAddCarry is an add with optional carry in.
	OpAddCarry
)

// Instr is one recorded Machine call.
type Instr struct {
	Op Op

	// OpMulWide operands.
	Pair Pair
	I, J int

	// OpAddCarry operands.
	Dst, X, Y Loc
	CarryIn   bool
}

// Recorder is a Machine that records every call in issue order instead of
// executing it.
type Recorder struct {
	instrs []Instr
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// MulWide implements Machine.
func (r *Recorder) MulWide(p Pair, i, j int) {
	r.instrs = append(r.instrs, Instr{Op: OpMulWide, Pair: p, I: i, J: j})
}

// AddCarry implements Machine.
func (r *Recorder) AddCarry(dst, x, y Loc, carryIn bool) {
	r.instrs = append(r.instrs, Instr{Op: OpAddCarry, Dst: dst, X: x, Y: y, CarryIn: carryIn})
}

// Instrs returns the instructions recorded so far.
func (r *Recorder) Instrs() []Instr { return r.instrs }
