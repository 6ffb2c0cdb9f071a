package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestDetectHost(t *testing.T) {
	h := DetectHost()
	if h.Arch == "" {
		t.Error("Arch should be set")
	}
	if h.Cores < 1 {
		t.Errorf("Cores = %d, want >= 1", h.Cores)
	}
	if h.FeatureString() == "" {
		t.Error("FeatureString should never be empty")
	}
}

func TestFeatureString(t *testing.T) {
	if got := (Host{}).FeatureString(); got != "none" {
		t.Errorf("empty FeatureString = %q, want none", got)
	}
	if got := (Host{Features: []string{"bmi2", "adx"}}).FeatureString(); got != "bmi2,adx" {
		t.Errorf("FeatureString = %q", got)
	}
}
