// Package ui renders user-facing console output.
package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Amr-9/MintHunter/pkg/generator"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	purple = color.New(color.FgMagenta, color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

var printer = message.NewPrinter(language.English)

// SetColor enables or disables ANSI colours for all console output.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// PrintWelcomeBanner shows the program banner.
func PrintWelcomeBanner(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cyan("  ╔══════════════════════════════════════════════╗"))
	fmt.Fprintln(w, cyan("  ║   ◎  M I N T H U N T E R                     ║"))
	fmt.Fprintln(w, cyan("  ╚══════════════════════════════════════════════╝"))
	fmt.Fprintf(w, "     %s %s\n\n", yellow("Solana vanity mint addresses"), dim("v"+version))
}

// PrintSearchInfo displays the target and its expected difficulty.
func PrintSearchInfo(w io.Writer, target generator.Target, workers int) {
	fmt.Fprintf(w, "    %s", green("🚀 SEARCHING"))
	for i, s := range target.Suffixes() {
		if i > 0 {
			fmt.Fprint(w, dim(" or"))
		}
		fmt.Fprintf(w, " %s%s", dim("..."), cyan(s))
	}
	fmt.Fprintf(w, " %s %s\n", dim(fmt.Sprintf("(1/%s)", FormatAttempts(ExpectedAttempts(target)))),
		dim(fmt.Sprintf("on %d CPU cores", workers)))
}

// ExpectedAttempts returns the mean number of attempts one episode needs
// to satisfy target.
func ExpectedAttempts(target generator.Target) float64 {
	p := 0.0
	for _, s := range target.Suffixes() {
		p += 1 / generator.EstimateDifficulty(len(s))
	}
	if p == 0 {
		return 0
	}
	return 1 / p
}

// ProgressBar renders how far attempts has come towards expected, using
// the probability of at least one hit so far.
func ProgressBar(attempts uint64, expected float64, width int) string {
	progress := 1.0
	if expected > 0 {
		progress = 1 - math.Exp(-float64(attempts)/expected)
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}

// PrintKeypair shows a found address and its private key.
func PrintKeypair(w io.Writer, address, privateKey string) {
	fmt.Fprintf(w, "    %s\n", cyan("◎ SOLANA ADDRESS"))
	fmt.Fprintf(w, "       %s\n\n", green(address))
	fmt.Fprintf(w, "    %s\n", purple("🔑 PRIVATE KEY"))
	fmt.Fprintf(w, "       %s\n\n", yellow(privateKey))
	fmt.Fprintf(w, "    %s\n", red("⚠  KEEP YOUR PRIVATE KEY SECRET!"))
}

// PrintError reports a fatal error.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "\n    %s %v\n", red("✗ Error:"), err)
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber groups digits with commas.
func FormatNumber(n uint64) string {
	return printer.Sprintf("%d", n)
}

// FormatAttempts formats an attempt estimate. Values too large to read as
// grouped digits switch to scientific notation.
func FormatAttempts(n float64) string {
	if n >= 1e15 {
		return fmt.Sprintf("%.2e", n)
	}
	return FormatNumber(uint64(math.Round(n)))
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

func seconds(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
