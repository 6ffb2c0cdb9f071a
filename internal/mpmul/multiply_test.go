package mpmul

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/limb"
)

var allStrategies = []Strategy{Schoolbook{}, FixedFour{}}

func TestMultiply_Scenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b []limb.Word
		want []limb.Word
	}{
		{"15*16", []limb.Word{15, 0}, []limb.Word{16, 0}, []limb.Word{240, 0, 0, 0}},
		{"2^64*2^65", []limb.Word{0, 1}, []limb.Word{0, 2}, []limb.Word{0, 0, 2, 0}},
		{"(2^128-1)*2", []limb.Word{limb.Max, limb.Max}, []limb.Word{2, 0}, []limb.Word{limb.Max - 1, limb.Max, 1, 0}},
		{"0*max", []limb.Word{0, 0}, []limb.Word{limb.Max, limb.Max}, []limb.Word{0, 0, 0, 0}},
		{"2^63*2", []limb.Word{limb.HighBit, 0}, []limb.Word{2, 0}, []limb.Word{0, 1, 0, 0}},
		{"max*max", []limb.Word{limb.Max, limb.Max}, []limb.Word{limb.Max, limb.Max}, []limb.Word{1, 0, limb.Max - 1, limb.Max}},
	}

	for _, s := range allStrategies {
		for _, tt := range tests {
			t.Run(s.Name()+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				out := make([]limb.Word, 4)
				if err := Multiply(s, tt.a, tt.b, out); err != nil {
					t.Fatalf("Multiply: %v", err)
				}
				for i := range tt.want {
					if out[i] != tt.want[i] {
						t.Fatalf("got %s, want %s", apperrors.FormatLimbs(out), apperrors.FormatLimbs(tt.want))
					}
				}
			})
		}
	}
}

func TestMultiply_IgnoresPriorOutputAndKeepsInputs(t *testing.T) {
	t.Parallel()
	for _, s := range allStrategies {
		t.Run(s.Name(), func(t *testing.T) {
			t.Parallel()
			a := []limb.Word{0x0123456789abcdef, 0xfedcba9876543210}
			b := []limb.Word{limb.Max, 3}
			a0, b0 := append([]limb.Word(nil), a...), append([]limb.Word(nil), b...)

			clean := make([]limb.Word, 4)
			dirty := []limb.Word{limb.Max, 7, limb.Max, 9}
			if err := Multiply(s, a, b, clean); err != nil {
				t.Fatal(err)
			}
			if err := Multiply(s, a, b, dirty); err != nil {
				t.Fatal(err)
			}
			for i := range clean {
				if clean[i] != dirty[i] {
					t.Fatalf("result depends on prior output: %v vs %v", clean, dirty)
				}
			}
			for i := range a {
				if a[i] != a0[i] || b[i] != b0[i] {
					t.Fatalf("inputs mutated: a=%v b=%v", a, b)
				}
			}
		})
	}
}

func TestMultiply_ContractViolation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		s            Strategy
		na, nb, nout int
		operand      string
		unsupported  bool
	}{
		{"empty operands", Schoolbook{}, 0, 0, 0, "width", true},
		{"b shorter", Schoolbook{}, 4, 3, 8, "b", false},
		{"out too short", Schoolbook{}, 4, 4, 7, "out", false},
		{"out too long", Schoolbook{}, 2, 2, 5, "out", false},
		{"fixed4 at width 4", FixedFour{}, 4, 4, 8, "width", true},
		{"fixed4 at width 1", FixedFour{}, 1, 1, 2, "width", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := make([]limb.Word, tt.nout)
			for i := range out {
				out[i] = 0xdead
			}
			err := Multiply(tt.s, make([]limb.Word, tt.na), make([]limb.Word, tt.nb), out)

			var cv *apperrors.ContractViolation
			if !errors.As(err, &cv) {
				t.Fatalf("Multiply error = %v, want *ContractViolation", err)
			}
			if cv.Operand != tt.operand {
				t.Errorf("Operand = %q, want %q", cv.Operand, tt.operand)
			}
			if got := errors.Is(err, apperrors.ErrUnsupportedWidth); got != tt.unsupported {
				t.Errorf("errors.Is(ErrUnsupportedWidth) = %v, want %v", got, tt.unsupported)
			}
			for i, w := range out {
				if w != 0xdead {
					t.Fatalf("out[%d] was written on a rejected call", i)
				}
			}
		})
	}
}

func TestMultiply_RejectsAliasedOutput(t *testing.T) {
	t.Parallel()
	for _, s := range allStrategies {
		t.Run(s.Name(), func(t *testing.T) {
			t.Parallel()
			buf := []limb.Word{5, 0, 0, 0}
			b := []limb.Word{7, 0}

			err := Multiply(s, buf[:2], b, buf)
			if !errors.Is(err, apperrors.ErrAliasedOutput) {
				t.Fatalf("out overlapping a: error = %v, want ErrAliasedOutput", err)
			}
			var cv *apperrors.ContractViolation
			if !errors.As(err, &cv) || cv.Operand != "out" {
				t.Errorf("error = %#v, want *ContractViolation on out", err)
			}
			if buf[0] != 5 || buf[1] != 0 {
				t.Fatalf("buffer written on a rejected call: %v", buf)
			}

			a := []limb.Word{7, 0}
			if err := Multiply(s, a, buf[2:], buf); !errors.Is(err, apperrors.ErrAliasedOutput) {
				t.Errorf("out overlapping b: error = %v, want ErrAliasedOutput", err)
			}
		})
	}
}

func TestMultiply_DisjointViewsOfOneArray(t *testing.T) {
	t.Parallel()
	for _, s := range allStrategies {
		t.Run(s.Name(), func(t *testing.T) {
			t.Parallel()
			// a | b | out laid out back to back, plus a squaring call with a == b.
			buf := []limb.Word{5, 0, 7, 0, 0, 0, 0, 0}
			a, b, out := buf[0:2], buf[2:4], buf[4:8]
			if err := Multiply(s, a, b, out); err != nil {
				t.Fatalf("Multiply: %v", err)
			}
			if out[0] != 35 || out[1] != 0 || out[2] != 0 || out[3] != 0 {
				t.Errorf("5*7 = %s, want 35", apperrors.FormatLimbs(out))
			}
			if err := Multiply(s, b, b, out); err != nil {
				t.Fatalf("squaring: %v", err)
			}
			if out[0] != 49 {
				t.Errorf("7*7 = %s, want 49", apperrors.FormatLimbs(out))
			}
		})
	}
}

func TestMul_Auto(t *testing.T) {
	t.Parallel()
	for n, want := range map[int]string{1: "schoolbook", 2: "fixed4", 4: "schoolbook", 8: "schoolbook"} {
		if got := Auto(n).Name(); got != want {
			t.Errorf("Auto(%d) = %s, want %s", n, got, want)
		}
	}

	for _, n := range []int{1, 2, 3, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := make([]limb.Word, n)
			b := make([]limb.Word, n)
			a[0], b[0] = 6, 7
			out := make([]limb.Word, 2*n)
			if err := Mul(a, b, out); err != nil {
				t.Fatal(err)
			}
			if out[0] != 42 {
				t.Errorf("6*7 = %d", out[0])
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	names := Strategies()
	if len(names) != 2 || names[0] != "fixed4" || names[1] != "schoolbook" {
		t.Fatalf("Strategies() = %v", names)
	}
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil || s.Name() != name {
			t.Errorf("Lookup(%q) = %v, %v", name, s, err)
		}
	}
	if _, err := Lookup("karatsuba"); err == nil {
		t.Error("Lookup of an unknown strategy should fail")
	}
}
