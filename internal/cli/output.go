// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* and Print* functions write formatted output to an [io.Writer].
//     Examples: [DisplayProgress], [PrintExecutionConfig].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatProgressLine], [FormatQuietStatus].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/mulcheck/internal/config"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/ui"
)

// WriteReportToFile writes a plain text report of the run to path, creating
// parent directories as needed.
func WriteReportToFile(report harness.Report, cfg config.AppConfig, path string) error {
	if path == "" {
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Multiplication Verification Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Widths: %v\n", cfg.Widths)
	fmt.Fprintf(file, "# Strategy: %s\n", cfg.Strategy)
	fmt.Fprintf(file, "# Oracle: %s\n", cfg.Oracle)
	fmt.Fprintf(file, "# Seed: %#x\n", cfg.Seed)
	fmt.Fprintf(file, "# Duration: %s\n", report.Duration)
	fmt.Fprintf(file, "\n")

	if err := report.WriteText(file); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return file.Close()
}

// FormatQuietStatus is the single status line printed in quiet mode, e.g.
// "PASS 1234/1234" or "FAIL 3/1234".
func FormatQuietStatus(report harness.Report) string {
	t := report.Totals()
	switch {
	case t.Failed > 0:
		return fmt.Sprintf("FAIL %d/%d", t.Failed, t.Total)
	case report.Err() != nil:
		return fmt.Sprintf("ERROR %d/%d", t.Passed, t.Total)
	}
	return fmt.Sprintf("PASS %d/%d", t.Passed, t.Total)
}

// DisplaySavedFile confirms that an artifact was written.
func DisplaySavedFile(out io.Writer, what, path string) {
	fmt.Fprintf(out, "%s saved to: %s\n", ui.Paint(ui.Pass(), "✓ "+what), ui.Paint(ui.Value(), path))
}
