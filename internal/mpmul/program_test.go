package mpmul

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/limb"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCompile_SchoolbookEmitsEveryPartialProduct(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			p, err := Compile(Schoolbook{}, n)
			require.NoError(t, err)

			st := p.Stats()
			require.Equal(t, n*n, st.MulWide)
			// 2n zeroing adds plus a full ripple from every offset.
			require.Equal(t, n*n*n+n*n+2*n, st.AddCarry)

			seen := make(map[[2]int]bool)
			for _, in := range p.Instrs {
				if in.Op == OpMulWide {
					seen[[2]int{in.I, in.J}] = true
				}
			}
			require.Len(t, seen, n*n)
		})
	}
}

func TestCompile_FixedFour(t *testing.T) {
	t.Parallel()
	p, err := Compile(FixedFour{}, 2)
	require.NoError(t, err)
	require.Equal(t, Stats{MulWide: 4, AddCarry: 7}, p.Stats())

	_, err = Compile(FixedFour{}, 4)
	var cv *apperrors.ContractViolation
	require.ErrorAs(t, err, &cv)
	require.True(t, errors.Is(err, apperrors.ErrUnsupportedWidth))
}

func TestProgram_ExecMatchesMultiply(t *testing.T) {
	t.Parallel()
	cases := []struct {
		s    Strategy
		a, b []limb.Word
	}{
		{FixedFour{}, []limb.Word{limb.Max, limb.Max}, []limb.Word{limb.Max, limb.Max}},
		{Schoolbook{}, []limb.Word{limb.Max, limb.Max}, []limb.Word{2, 0}},
		{Schoolbook{}, []limb.Word{1, 2, 3, limb.Max}, []limb.Word{limb.Max, limb.HighBit, 0, 7}},
	}
	for _, tc := range cases {
		n := len(tc.a)
		p, err := Compile(tc.s, n)
		require.NoError(t, err)

		want := make([]limb.Word, 2*n)
		require.NoError(t, Multiply(tc.s, tc.a, tc.b, want))

		got := []limb.Word{9, 9, 9, 9, 9, 9, 9, 9}[:2*n]
		require.NoError(t, p.Exec(tc.a, tc.b, got))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s/%d replay mismatch (-want +got):\n%s", tc.s.Name(), n, diff)
		}
	}
}

func TestProgram_ExecRejectsOtherWidths(t *testing.T) {
	t.Parallel()
	p, err := Compile(Schoolbook{}, 4)
	require.NoError(t, err)
	err = p.Exec(make([]limb.Word, 2), make([]limb.Word, 2), make([]limb.Word, 4))
	require.ErrorIs(t, err, apperrors.ErrUnsupportedWidth)
}

func TestProgram_ExecRejectsAliasedOutput(t *testing.T) {
	t.Parallel()
	p, err := Compile(Schoolbook{}, 2)
	require.NoError(t, err)
	buf := []limb.Word{5, 0, 0, 0}
	err = p.Exec(buf[:2], []limb.Word{7, 0}, buf)
	require.ErrorIs(t, err, apperrors.ErrAliasedOutput)
	require.Equal(t, []limb.Word{5, 0, 0, 0}, buf)
}

func TestProgram_WriteListing(t *testing.T) {
	t.Parallel()
	p, err := Compile(FixedFour{}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.WriteListing(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	want := []string{
		"; fixed4 2x2 -> 4 limbs",
		"; 4 mulw, 7 adds/adcs",
		"\tmulw\tp0, a[0], b[0]",
		"\tmulw\tp1, a[0], b[1]",
		"\tmulw\tp2, a[1], b[0]",
		"\tmulw\tp3, a[1], b[1]",
		"\tadds\tt0, p1.lo, p2.lo",
		"\tadcs\tt1, p1.hi, p2.hi",
		"\tadcs\tt2, zr, zr",
		"\tadds\tout[0], p0.lo, zr",
		"\tadds\tout[1], p0.hi, t0",
		"\tadcs\tout[2], p3.lo, t1",
		"\tadcs\tout[3], p3.hi, t2",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}
