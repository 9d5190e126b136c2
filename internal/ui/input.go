package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Amr-9/MintHunter/pkg/generator"
)

// HardSuffixLen is the suffix length from which the CLI asks before
// starting a search.
const HardSuffixLen = 6

// IsHard reports whether any suffix of target is long enough to warrant a
// confirmation prompt.
func IsHard(target generator.Target) bool {
	for _, s := range target.Suffixes() {
		if len(s) >= HardSuffixLen {
			return true
		}
	}
	return false
}

// ConfirmHardSearch warns about the expected cost of target and reads a
// yes/no answer from r. Anything but y or yes declines.
func ConfirmHardSearch(r io.Reader, w io.Writer, target generator.Target, count int) bool {
	expected := ExpectedAttempts(target) * float64(count)
	fmt.Fprintf(w, "\n    %s %s needs about %s attempts.\n",
		yellow("⚠"), cyan(target.String()), FormatAttempts(expected))
	fmt.Fprintf(w, "    Continue? %s ", dim("[y/N]"))

	input, _ := bufio.NewReader(r).ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
