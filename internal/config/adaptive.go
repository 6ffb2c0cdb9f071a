package config

import "runtime"

// ApplyAdaptiveDefaults fills the concurrency settings left at zero from the
// host CPU count. User-specified values are kept.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers(runtime.NumCPU())
	}
	if cfg.Parallel == 0 {
		cfg.Parallel = EstimateParallelSuites(runtime.NumCPU(), cfg.Workers)
	}
	return cfg
}

// EstimateWorkers returns the per-suite worker count for numCPU cores.
// Vectors are cheap, so a suite rarely benefits from more than eight.
func EstimateWorkers(numCPU int) int {
	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 8:
		return numCPU
	default:
		return 8
	}
}

// EstimateParallelSuites spreads the remaining cores across suites so that
// suites times workers stays close to numCPU.
func EstimateParallelSuites(numCPU, workers int) int {
	if workers < 1 {
		workers = 1
	}
	if p := numCPU / workers; p > 1 {
		return p
	}
	return 1
}
