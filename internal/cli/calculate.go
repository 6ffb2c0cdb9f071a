package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/mulcheck/internal/config"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/orchestration"
	"github.com/agbru/mulcheck/internal/sysmon"
	"github.com/agbru/mulcheck/internal/ui"
)

// PrintExecutionConfig displays the run configuration: what is verified, the
// size of the corpus and the host it runs on.
func PrintExecutionConfig(cfg config.AppConfig, suites []harness.Suite, host sysmon.Host, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Verifying widths %s with strategy %s against the %s oracle, timeout %s.\n",
		ui.Paint(ui.Label(), cfg.Widths), ui.Paint(ui.Pass(), cfg.Strategy),
		ui.Paint(ui.Value(), cfg.Oracle), ui.Paint(ui.Warn(), cfg.Timeout))
	fmt.Fprintf(out, "Corpus: %s suites, %s vectors (%d random per width, seed %#x).\n",
		ui.Paint(ui.Value(), len(suites)), ui.Paint(ui.Value(), orchestration.CountVectors(suites)),
		cfg.RandomCount, cfg.Seed)
	model := host.Model
	if model == "" {
		model = "unknown CPU"
	}
	fmt.Fprintf(out, "Environment: %s (%s), %s logical processors, Go %s, features: %s.\n",
		model, host.Arch, ui.Paint(ui.Value(), host.Cores), runtime.Version(), host.FeatureString())
	fmt.Fprintf(out, "Concurrency: %d workers per suite, %d suites at once.\n", cfg.Workers, cfg.Parallel)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
