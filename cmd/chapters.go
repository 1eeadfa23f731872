package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/chapterquiz/internal/bank"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List chapters and their question counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		e, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.close()

		b, err := e.loadBank(cmd.Context())
		if err != nil {
			return err
		}
		return printChapters(cmd.OutOrStdout(), b, asJSON)
	},
}

func init() {
	chaptersCmd.Flags().Bool("json", false, "Print as JSON")
}

type chapterJSON struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func printChapters(w io.Writer, b *bank.Bank, asJSON bool) error {
	chapters := bank.ListChapters(b)

	if asJSON {
		out := make([]chapterJSON, 0, len(chapters))
		for _, c := range chapters {
			out = append(out, chapterJSON{Name: c.Name, Count: c.Count})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	width := len("Chapter")
	for _, c := range chapters {
		width = max(width, len(c.Name))
	}

	fmt.Fprintf(w, "%-*s  %s\n", width, "Chapter", "Questions")
	for _, c := range chapters {
		fmt.Fprintf(w, "%-*s  %d\n", width, c.Name, c.Count)
	}
	fmt.Fprintf(w, "%-*s  %d\n", width, "ALL", b.Len())
	return nil
}
