package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and checks its modes and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	tmpDir := t.TempDir()
	binName := "mulcheck"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/mulcheck")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build mulcheck: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:    "Default run",
			args:    []string{"--random", "10"},
			wantOut: "success. all",
		},
		{
			name:    "Every strategy",
			args:    []string{"--widths", "1,2,5", "--strategy", "all", "--random", "10"},
			wantOut: "w2/fixed4~schoolbook/cross",
		},
		{
			name:    "Quiet",
			args:    []string{"--widths", "2", "-q"},
			wantOut: "PASS ",
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:    "Version",
			args:    []string{"--version"},
			wantOut: "mulcheck",
		},
		{
			name:    "Emit listing",
			args:    []string{"--emit", "2"},
			wantOut: "mulw",
		},
		{
			name:     "Bad width",
			args:     []string{"--widths", "0"},
			wantOut:  "configuration error",
			wantCode: 4,
		},
		{
			name:     "Unknown oracle from env",
			env:      []string{"MULCHECK_ORACLE=nope"},
			wantOut:  "unknown oracle",
			wantCode: 4,
		},
		{
			name:     "Unsupported emit width",
			args:     []string{"--emit", "4", "--strategy", "fixed4"},
			wantOut:  "unsupported operand width",
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running mulcheck: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}

			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
