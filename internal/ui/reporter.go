package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Amr-9/MintHunter/pkg/batch"
	"github.com/Amr-9/MintHunter/pkg/generator"
	"github.com/Amr-9/MintHunter/pkg/generator/cpu"
	"github.com/Amr-9/MintHunter/pkg/generator/solana"
)

// ConsoleReporter prints batch events as they happen.
type ConsoleReporter struct {
	// ShowKeys prints every found keypair, private key included.
	ShowKeys bool

	mu   sync.Mutex
	w    io.Writer
	dual bool
}

var _ batch.Reporter = (*ConsoleReporter)(nil)

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) Started(target generator.Target, goal, workers int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dual = target.Kind == generator.KindAnyOfSuffixes
	if r.dual {
		per := goal / 2
		fmt.Fprintf(r.w, "🔍 Generating %d addresses for both '%s' and '%s' using %d CPU cores...\n", per, target.A, target.B, workers)
		fmt.Fprintf(r.w, "🎯 Target: %d %s + %d %s = %d total addresses\n", per, target.A, per, target.B, goal)
	} else {
		fmt.Fprintf(r.w, "🔍 Generating %d addresses ending with '%s' using %d CPU cores...\n", goal, target.A, workers)
	}
	PrintSearchInfo(r.w, target, workers)
}

func (r *ConsoleReporter) Found(label string, n, count int, outcome generator.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dual {
		fmt.Fprintf(r.w, "✨ Found %s address %d/%d: %s\n", strings.ToUpper(label), n, count, green(outcome.Address))
	} else {
		fmt.Fprintf(r.w, "✨ Found address %d/%d: %s\n", n, count, green(outcome.Address))
	}
	if r.ShowKeys {
		PrintKeypair(r.w, outcome.Address, solana.EncodePrivateKey(outcome.Keypair))
	}
}

func (r *ConsoleReporter) Milestone(total, goal int, counts []batch.LabelCount) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.w, "📊 Progress: %d/%d addresses found (%s)\n", total, goal, joinCounts(counts))
}

func (r *ConsoleReporter) Saved(label, path string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.w, "💾 Saved %d %s addresses to: %s\n", n, label, cyan(path))
}

func (r *ConsoleReporter) Finished(s batch.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.w, "\n%s\n", green("📊 Generation complete!"))
	fmt.Fprintf(r.w, "⏱️  Total time: %s\n", FormatDuration(seconds(s.ElapsedSecs)))
	fmt.Fprintf(r.w, "🎯 Total attempts: %s\n", FormatNumber(s.Attempts))
	fmt.Fprintf(r.w, "📈 Average attempts per address: %.2f\n", s.AvgPerAddress)
	fmt.Fprintf(r.w, "⚡ Performance: %s\n", FormatHashRate(s.Rate))
	if r.dual {
		fmt.Fprintf(r.w, "✅ Generated %s addresses\n", joinCounts(s.Counts))
	}
}

func joinCounts(counts []batch.LabelCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d %s", c.Count, c.Label))
	}
	return strings.Join(parts, ", ")
}

// ProgressLine returns a progress callback that prints one line per report.
// The bar shows the odds that the attempts so far would have hit the target.
func ProgressLine(w io.Writer) cpu.ProgressFunc {
	return func(p cpu.Progress) {
		bar := ProgressBar(p.Attempts, ExpectedAttempts(p.Target), 30)
		fmt.Fprintf(w, "    %s %s │ %s │ %s attempts │ %s\n",
			dim("⏳"), dim(bar),
			green(FormatHashRate(p.HashRate)),
			yellow(FormatNumber(p.Attempts)),
			FormatDuration(seconds(p.ElapsedSecs)))
	}
}
