package harness

import (
	"bytes"
	"context"
	"testing"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/limb"
	"github.com/stretchr/testify/require"
)

func TestReport_Aggregation(t *testing.T) {
	t.Parallel()
	mm := &apperrors.VerificationMismatch{
		Suite: "w2/droptop/edge", Vector: "max*max",
		A: []limb.Word{limb.Max, limb.Max}, B: []limb.Word{limb.Max, limb.Max},
		Want: []limb.Word{1, 0, limb.Max - 1, limb.Max}, Got: []limb.Word{1, 0, 0, 0},
	}
	r := Report{Suites: []SuiteResult{
		{Suite: "w2/fixed4/curated", Tally: Tally{Total: 6, Passed: 6}},
		{Suite: "w2/droptop/edge", Tally: Tally{Total: 4, Passed: 3, Failed: 1}, Mismatches: []*apperrors.VerificationMismatch{mm}},
	}}

	require.Equal(t, Tally{Total: 10, Passed: 9, Failed: 1}, r.Totals())
	require.InDelta(t, 90.0, r.SuccessRate(), 1e-9)
	require.Equal(t, apperrors.ExitErrorMismatch, r.ExitCode())
	require.Len(t, r.Mismatches(), 1)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	require.Contains(t, out, "w2/fixed4/curated: 6/6 passed")
	require.Contains(t, out, "w2/droptop/edge: 3/4 passed")
	require.Contains(t, out, "Expected = 0xffffffffffffffff_fffffffffffffffe_0000000000000000_0000000000000001")
	require.Contains(t, out, "Success rate: 90.0%")
}

func TestReport_ExitCodes(t *testing.T) {
	t.Parallel()
	require.Equal(t, apperrors.ExitSuccess, Report{}.ExitCode())
	require.Zero(t, Report{}.SuccessRate())

	pass := Report{Suites: []SuiteResult{{Tally: Tally{Total: 1, Passed: 1}}}}
	require.Equal(t, apperrors.ExitSuccess, pass.ExitCode())

	stopped := Report{Suites: []SuiteResult{{Err: context.Canceled}}}
	require.Equal(t, apperrors.ExitErrorCanceled, stopped.ExitCode())

	broken := Report{Suites: []SuiteResult{{Err: &apperrors.ContractViolation{Operand: "out", Want: 4, Got: 3}}}}
	require.Equal(t, apperrors.ExitErrorGeneric, broken.ExitCode())
}
