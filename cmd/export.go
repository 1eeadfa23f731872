package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the parsed bank as JSON",
	Long:  "Write the parsed bank as a JSON document that --bank accepts back (use a .json path).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		e, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.close()

		b, err := e.loadBank(cmd.Context())
		if err != nil {
			return err
		}

		data, err := b.ExportJSON()
		if err != nil {
			return fmt.Errorf("encode bank: %w", err)
		}
		data = append(data, '\n')

		if output == "" || output == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		e.log.WithField("path", output).Infof("exported %d questions", b.Len())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
