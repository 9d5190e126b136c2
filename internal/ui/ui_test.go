package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/MintHunter/pkg/batch"
	"github.com/Amr-9/MintHunter/pkg/generator"
	"github.com/Amr-9/MintHunter/pkg/generator/cpu"
	"github.com/Amr-9/MintHunter/pkg/generator/solana"
)

func init() {
	SetColor(false)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{11316496, "11,316,496"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.n))
	}
}

func TestFormatHashRate(t *testing.T) {
	assert.Equal(t, "950/s", FormatHashRate(950))
	assert.Equal(t, "12.5K/s", FormatHashRate(12500))
	assert.Equal(t, "3.2M/s", FormatHashRate(3200000))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "4.5s", FormatDuration(4500*time.Millisecond))
	assert.Equal(t, "2m 5s", FormatDuration(125*time.Second))
	assert.Equal(t, "1h 1m", FormatDuration(61*time.Minute))
}

func TestFormatAttempts(t *testing.T) {
	assert.Equal(t, "11,316,496", FormatAttempts(11316496))
	assert.Equal(t, "5,658,248", FormatAttempts(5658248))
	assert.Equal(t, "2.52e+19", FormatAttempts(generator.EstimateDifficulty(11)))
}

func TestExpectedAttempts(t *testing.T) {
	assert.InDelta(t, 58*58*58*58, ExpectedAttempts(generator.Suffix("pump")), 1e-6)
	assert.InDelta(t, 58*58*58*58/2.0, ExpectedAttempts(generator.AnyOfSuffixes("pump", "bonk")), 1e-6)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 100, 10))
	assert.Equal(t, "▓▓▓▓▓▓▓▓▓▓", ProgressBar(1e9, 100, 10))
	bar := ProgressBar(100, 100, 10)
	assert.Equal(t, 6, strings.Count(bar, "▓"))
}

func TestConsoleReporterSingle(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	r.Started(generator.Suffix("pump"), 2, 8)
	r.Found("pump", 1, 2, generator.Outcome{Address: "abcpump"})
	r.Saved("pump", "pump.json", 2)
	r.Finished(batch.Summary{ElapsedSecs: 2, Attempts: 20000, AvgPerAddress: 10000, Rate: 10000})

	out := buf.String()
	assert.Contains(t, out, "Generating 2 addresses ending with 'pump' using 8 CPU cores")
	assert.Contains(t, out, "Found address 1/2: abcpump")
	assert.Contains(t, out, "Saved 2 pump addresses to: pump.json")
	assert.Contains(t, out, "Total attempts: 20,000")
	assert.Contains(t, out, "Average attempts per address: 10000.00")
	assert.Contains(t, out, "Performance: 10.0K/s")
	assert.NotContains(t, out, "Generated ")
}

func TestConsoleReporterDual(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)
	counts := []batch.LabelCount{{Label: "pump", Count: 1}, {Label: "bonk", Count: 1}}

	r.Started(generator.AnyOfSuffixes("pump", "bonk"), 2, 4)
	r.Found("bonk", 1, 1, generator.Outcome{Address: "xbonk"})
	r.Milestone(2, 2, counts)
	r.Finished(batch.Summary{Counts: counts})

	out := buf.String()
	assert.Contains(t, out, "Generating 1 addresses for both 'pump' and 'bonk' using 4 CPU cores")
	assert.Contains(t, out, "Target: 1 pump + 1 bonk = 2 total addresses")
	assert.Contains(t, out, "Found BONK address 1/1: xbonk")
	assert.Contains(t, out, "Progress: 2/2 addresses found (1 pump, 1 bonk)")
	assert.Contains(t, out, "Generated 1 pump, 1 bonk addresses")
}

func TestProgressLine(t *testing.T) {
	var buf bytes.Buffer
	ProgressLine(&buf)(cpu.Progress{
		Stats:  generator.Stats{Attempts: 1500000, HashRate: 250000, ElapsedSecs: 6},
		Target: generator.Suffix("pump"),
	})
	out := buf.String()
	assert.Contains(t, out, "250.0K/s")
	assert.Contains(t, out, "1,500,000 attempts")
	assert.Contains(t, out, "6.0s")
}

func TestConfirmHardSearch(t *testing.T) {
	target := generator.Suffix("pumpit")
	assert.True(t, IsHard(target))
	assert.False(t, IsHard(generator.AnyOfSuffixes("pump", "bonk")))

	var buf bytes.Buffer
	assert.True(t, ConfirmHardSearch(strings.NewReader("y\n"), &buf, target, 1))
	assert.Contains(t, buf.String(), "'pumpit' needs about")
	assert.True(t, ConfirmHardSearch(strings.NewReader("YES\n"), &buf, target, 1))
	assert.False(t, ConfirmHardSearch(strings.NewReader("\n"), &buf, target, 1))
	assert.False(t, ConfirmHardSearch(strings.NewReader(""), &buf, target, 1))

	// Suffixes past uint64 range report the real magnitude.
	buf.Reset()
	ConfirmHardSearch(strings.NewReader("n\n"), &buf, generator.Suffix("pumppumppum"), 1)
	assert.Contains(t, buf.String(), "needs about 2.52e+19 attempts")
}

func TestConsoleReporterShowKeys(t *testing.T) {
	kp, err := solana.NewSource().Generate()
	require.NoError(t, err)
	outcome := generator.Outcome{Keypair: kp, Address: solana.NewSource().Address(kp)}

	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)
	r.Started(generator.Suffix("x"), 1, 1)
	r.Found("x", 1, 1, outcome)
	assert.NotContains(t, buf.String(), solana.EncodePrivateKey(kp))

	r.ShowKeys = true
	r.Found("x", 1, 1, outcome)
	assert.Contains(t, buf.String(), "PRIVATE KEY")
	assert.Contains(t, buf.String(), solana.EncodePrivateKey(kp))
}

func TestPrintWelcomeBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintWelcomeBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "M I N T H U N T E R")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "✗ Error: boom")
}
