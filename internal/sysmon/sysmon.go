// Package sysmon samples host resource usage and reports the CPU features
// relevant to wide multiplication.
package sysmon

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Host describes the machine a run executes on.
type Host struct {
	Arch     string
	Model    string
	Cores    int
	Features []string
}

// DetectHost reads the CPU model and the wide-arithmetic features of the host:
// BMI2 (MULX) and ADX (ADCX/ADOX) on amd64, ASIMD on arm64.
func DetectHost() Host {
	h := Host{Arch: runtime.GOARCH, Cores: runtime.NumCPU()}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.Model = strings.TrimSpace(infos[0].ModelName)
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		h.Features = flags(map[string]bool{
			"bmi2": xcpu.X86.HasBMI2,
			"adx":  xcpu.X86.HasADX,
			"avx2": xcpu.X86.HasAVX2,
		})
	case "arm64":
		h.Features = flags(map[string]bool{
			"asimd": xcpu.ARM64.HasASIMD,
			"sve":   xcpu.ARM64.HasSVE,
		})
	}
	return h
}

// FeatureString joins the detected features, or returns "none".
func (h Host) FeatureString() string {
	if len(h.Features) == 0 {
		return "none"
	}
	return strings.Join(h.Features, ",")
}

func flags(m map[string]bool) []string {
	var out []string
	for _, name := range []string{"bmi2", "adx", "avx2", "asimd", "sve"} {
		if m[name] {
			out = append(out, name)
		}
	}
	return out
}
