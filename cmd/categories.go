package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"ctgapi/models"
	"ctgapi/services"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the categories as a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		count, _ := cmd.Flags().GetString("count")

		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}

		categories, cErr := services.NewCategory(snap.Categories).List(count)
		if cErr != nil {
			return cErr
		}

		table := tablewriter.NewTable(cmd.OutOrStdout())
		table.Header("ID", "Title", "Attributes")
		for _, category := range categories {
			if err := table.Append(strconv.Itoa(int(category.Id)), category.Title, attributeNames(category)); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	categoriesCmd.Flags().String("count", "", "number of categories to print (default all)")
}

func attributeNames(category models.Category) string {
	names := make([]string, 0, len(category.Attributes))
	for name := range category.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
