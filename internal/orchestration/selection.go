package orchestration

import (
	"github.com/agbru/mulcheck/internal/config"
	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/oracle"
)

// PlanSuites determines the suites to run for cfg, in execution order.
func PlanSuites(cfg config.AppConfig) ([]harness.Suite, error) {
	return harness.Plan(cfg.ToPlanConfig())
}

// SelectOracle returns the reference oracle named by cfg.
func SelectOracle(cfg config.AppConfig) (oracle.Oracle, error) {
	o, err := oracle.Lookup(cfg.Oracle)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	return o, nil
}

// CountVectors returns the number of vectors suites will check.
func CountVectors(suites []harness.Suite) int {
	n := 0
	for _, s := range suites {
		n += len(s.Vectors)
	}
	return n
}
