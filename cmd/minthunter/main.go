package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Amr-9/MintHunter/internal/config"
	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/internal/ui"
)

var version = "0.4.0"

var (
	cfg        = config.NewConfig()
	configFile string

	// Persistent flag values, applied over cfg only when set.
	flagWorkers        int
	flagReportInterval int
	flagTimeout        int
	flagVerbosity      uint32
	flagJSONLog        bool
	flagColor          bool
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetOut(color.Output)
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minthunter",
		Short: "Solana vanity mint address generator",
		Long: `MintHunter generates Solana keypairs whose base58 address ends with a
chosen suffix, such as pump.fun "pump" or lets.bonk "bonk" mints.
Every CPU core races on each address; results are saved as JSON or text.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	defaults := config.NewConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "TOML config file")
	pf.IntVarP(&flagWorkers, "workers", "w", defaults.Workers, "Number of worker goroutines")
	pf.IntVar(&flagReportInterval, "report-interval", defaults.ReportInterval, "Progress interval in seconds (0 disables)")
	pf.IntVar(&flagTimeout, "timeout", defaults.Timeout, "Abort the batch after this many seconds (0 waits forever)")
	pf.Uint32VarP(&flagVerbosity, "verbosity", "v", defaults.Verbosity, "Log level (0:panic ... 4:info, 5:debug, 6:trace)")
	pf.BoolVar(&flagJSONLog, "json-log", defaults.JSONLog, "Emit logs as JSON")
	pf.BoolVar(&flagColor, "color", defaults.Color, "Colourise console output")

	rootCmd.AddCommand(
		newSingleCmd("pump", "pump", "Generate addresses ending with 'pump'"),
		newSingleCmd("bonk", "bonk", "Generate addresses ending with 'bonk'"),
		newSingleCmd("pet", "Pet", "Generate addresses ending with 'Pet'"),
		newSuffixCmd(),
		newBothCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup resolves the configuration (defaults, file, flags) and prepares
// logging and the console before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if flags.Changed("report-interval") {
		cfg.ReportInterval = flagReportInterval
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("verbosity") {
		cfg.Verbosity = flagVerbosity
	}
	if flags.Changed("json-log") {
		cfg.JSONLog = flagJSONLog
	}
	if flags.Changed("color") {
		cfg.Color = flagColor
	}

	log.SetLogger(cfg.Verbosity, cfg.JSONLog, cfg.Color)
	ui.SetColor(cfg.Color)
	if _, ok := cmd.Annotations[searchAnnotation]; ok && !cfg.JSONLog {
		ui.PrintWelcomeBanner(cmd.OutOrStdout(), version)
	}

	if err := raisePriority(); err != nil {
		log.Debug("could not raise process priority", "err", err)
	}
	return nil
}
