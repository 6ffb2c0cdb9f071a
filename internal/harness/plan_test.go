package harness

import (
	"testing"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/stretchr/testify/require"
)

func suiteNames(suites []Suite) []string {
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	return names
}

func TestPlan_Auto(t *testing.T) {
	t.Parallel()
	suites, err := Plan(PlanConfig{Widths: []int{2, 4}, Strategy: "auto", RandomCount: 10, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, []string{
		"w2/fixed4/curated", "w2/fixed4/edge", "w2/fixed4/random",
		"w2/fixed4~schoolbook/cross",
		"w4/schoolbook/curated", "w4/schoolbook/edge", "w4/schoolbook/random",
	}, suiteNames(suites))
	for i, s := range suites {
		require.Equal(t, i, s.Index)
	}
}

func TestPlan_AllAndNamed(t *testing.T) {
	t.Parallel()
	suites, err := Plan(PlanConfig{Widths: []int{2, 8}, Strategy: "all"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"w2/fixed4/curated", "w2/fixed4/edge",
		"w2/schoolbook/curated", "w2/schoolbook/edge",
		"w2/fixed4~schoolbook/cross",
		"w8/schoolbook/curated", "w8/schoolbook/edge",
	}, suiteNames(suites))

	suites, err = Plan(PlanConfig{Widths: []int{2, 4, 8}, Strategy: "fixed4"})
	require.NoError(t, err)
	require.Equal(t, []string{"w2/fixed4/curated", "w2/fixed4/edge", "w2/fixed4~schoolbook/cross"}, suiteNames(suites))
}

func TestPlan_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  PlanConfig
	}{
		{"no widths", PlanConfig{Strategy: "auto"}},
		{"bad width", PlanConfig{Widths: []int{0}, Strategy: "auto"}},
		{"unknown strategy", PlanConfig{Widths: []int{2}, Strategy: "toom3"}},
		{"unsupported everywhere", PlanConfig{Widths: []int{4, 8}, Strategy: "fixed4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Plan(tt.cfg)
			var cfgErr apperrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}
