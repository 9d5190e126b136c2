package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/internal/ui"
	"github.com/Amr-9/MintHunter/pkg/batch"
	"github.com/Amr-9/MintHunter/pkg/generator"
	"github.com/Amr-9/MintHunter/pkg/generator/cpu"
	"github.com/Amr-9/MintHunter/pkg/generator/solana"
	"github.com/Amr-9/MintHunter/pkg/output"
)

var errDeclined = errors.New("search cancelled by user")

// searchAnnotation marks commands that run a search and get the banner.
const searchAnnotation = "search"

// searchFlags are the per-command batch flags.
type searchFlags struct {
	count    int
	format   string
	output   string
	yes      bool
	showKeys bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "c", 1, "Number of addresses to generate (per suffix in dual mode)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "json", "Output format: json or txt")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default <suffix>_addresses_<timestamp>.<format>)")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Do not ask before long searches")
	cmd.Flags().BoolVar(&f.showKeys, "show-keys", false, "Print each found private key to the console")
	cmd.Annotations = map[string]string{searchAnnotation: "true"}
}

// apply merges set flags into cfg, validates it and returns the format.
func (f *searchFlags) apply(cmd *cobra.Command) (output.Format, error) {
	if cmd.Flags().Changed("count") {
		cfg.Count = f.count
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = f.format
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = f.output
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return output.ParseFormat(cfg.Format)
}

func newSingleCmd(use, suffix, short string) *cobra.Command {
	flags := &searchFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(cmd, flags, suffix)
		},
	}
	flags.register(cmd)
	return cmd
}

func newSuffixCmd() *cobra.Command {
	flags := &searchFlags{}
	var suffix string
	cmd := &cobra.Command{
		Use:   "suffix",
		Short: "Generate addresses ending with any base58 suffix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(cmd, flags, suffix)
		},
	}
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Case-sensitive base58 suffix")
	_ = cmd.MarkFlagRequired("suffix")
	flags.register(cmd)
	return cmd
}

func newBothCmd() *cobra.Command {
	flags := &searchFlags{}
	var suffixA, suffixB string
	cmd := &cobra.Command{
		Use:   "both",
		Short: "Generate addresses for two suffixes at once",
		Long: `Generate --count addresses for each of two suffixes in a single search.
Every match fills whichever list it fits that still has room; results are
saved to <output>_<suffix-a> and <output>_<suffix-b>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoth(cmd, flags, suffixA, suffixB)
		},
	}
	cmd.Flags().StringVar(&suffixA, "suffix-a", "pump", "First suffix")
	cmd.Flags().StringVar(&suffixB, "suffix-b", "bonk", "Second suffix")
	flags.register(cmd)
	return cmd
}

func runSingle(cmd *cobra.Command, flags *searchFlags, suffix string) error {
	format, err := flags.apply(cmd)
	if err != nil {
		return err
	}
	if err := solana.ValidateSuffix(suffix); err != nil {
		return err
	}
	if !confirm(cmd, flags, generator.Suffix(suffix)) {
		return errDeclined
	}

	ctx, cancel := searchContext(cmd.Context())
	defer cancel()

	_, _, err = newRunner(cmd, flags).Single(ctx, batch.Job{
		Suffix: suffix,
		Count:  cfg.Count,
		Format: format,
		Output: cfg.Output,
	})
	return err
}

func runBoth(cmd *cobra.Command, flags *searchFlags, suffixA, suffixB string) error {
	format, err := flags.apply(cmd)
	if err != nil {
		return err
	}
	for _, s := range []string{suffixA, suffixB} {
		if err := solana.ValidateSuffix(s); err != nil {
			return err
		}
	}
	if !confirm(cmd, flags, generator.AnyOfSuffixes(suffixA, suffixB)) {
		return errDeclined
	}

	ctx, cancel := searchContext(cmd.Context())
	defer cancel()

	_, _, _, err = newRunner(cmd, flags).Both(ctx, batch.DualJob{
		SuffixA: suffixA,
		SuffixB: suffixB,
		Count:   cfg.Count,
		Format:  format,
		Output:  cfg.Output,
	})
	return err
}

func confirm(cmd *cobra.Command, flags *searchFlags, target generator.Target) bool {
	if flags.yes || !ui.IsHard(target) {
		return true
	}
	return ui.ConfirmHardSearch(cmd.InOrStdin(), cmd.OutOrStdout(), target, cfg.Count)
}

// searchContext is cancelled by SIGINT, SIGTERM or the configured timeout.
func searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if cfg.Timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Timeout)*time.Second)
	return ctx, func() {
		cancel()
		stop()
	}
}

func newRunner(cmd *cobra.Command, flags *searchFlags) *batch.Runner {
	out := cmd.OutOrStdout()

	searcher := cpu.NewCPUGenerator(cfg.Workers, solana.NewSource())
	searcher.SetReportInterval(time.Duration(cfg.ReportInterval) * time.Second)
	if !cfg.JSONLog {
		searcher.OnProgress(ui.ProgressLine(out))
	}
	log.Debug("search backend ready", "backend", searcher.Name(), "workers", searcher.Workers())

	reporter := ui.NewConsoleReporter(out)
	reporter.ShowKeys = flags.showKeys
	return batch.NewRunner(searcher, output.NewWriter(), reporter)
}
