package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	cerr "ctgapi/errors"
	"ctgapi/models"
	"ctgapi/response"
	"ctgapi/services"
)

var detailsCmd = &cobra.Command{
	Use:   "details [category_number]",
	Short: "Print category details as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		dtl := services.NewDetail(snap.Details, snap.Categories.Ids())

		var details map[int32]models.Detail
		if len(args) == 0 {
			details = dtl.All()
		} else {
			var cErr cerr.CError
			if details, cErr = dtl.Get(args[0]); cErr != nil {
				return cErr
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(response.Details(details, nil).Body())
	},
}
