package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configured datasets and report whether they are consistent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d categories, %d details from %s\n",
			snap.Categories.Total(), snap.Details.Len(), snap.Source)
		return err
	},
}
