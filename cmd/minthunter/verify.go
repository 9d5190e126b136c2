package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/pkg/generator"
	"github.com/Amr-9/MintHunter/pkg/generator/solana"
	"github.com/Amr-9/MintHunter/pkg/output"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check that saved keypairs derive their addresses and suffixes",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()

	var total, failed int
	for _, path := range args {
		records, err := output.Load(path)
		if err != nil {
			return err
		}
		log.Debug("verifying file", "path", path, "records", len(records))

		for _, r := range records {
			total++
			err := solana.VerifyKeypair(r.PubKey, r.PrivateKey)
			if err == nil && !generator.Suffix(r.SuffixType).Matches(r.PubKey) {
				err = fmt.Errorf("address does not end with '%s'", r.SuffixType)
			}
			if err != nil {
				failed++
				fmt.Fprintf(out, "%s %s: %v\n", bad("✗"), r.PubKey, err)
				continue
			}
			fmt.Fprintf(out, "%s %s\n", ok("✓"), r.PubKey)
		}
	}

	fmt.Fprintf(out, "\n%d keypairs checked, %d failed\n", total, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d keypairs failed verification", failed, total)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minthunter v%s\n", version)
		},
	}
}
