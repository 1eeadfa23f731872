package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/chapterquiz/internal/bank"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a question bank and report skipped lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.close()

		b, err := e.loadBank(cmd.Context())
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), e.cfg.Bank, b)
		return nil
	},
}

func printReport(w io.Writer, location string, b *bank.Bank) {
	diags := b.Diagnostics()

	fmt.Fprintf(w, "Bank:      %s\n", location)
	fmt.Fprintf(w, "Questions: %d\n", b.Len())
	fmt.Fprintf(w, "Chapters:  %d\n", len(b.Chapters()))
	fmt.Fprintf(w, "Skipped:   %d\n", len(diags))
	for _, d := range diags {
		fmt.Fprintf(w, "  %s\n", d)
	}
}
