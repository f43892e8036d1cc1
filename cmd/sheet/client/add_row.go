package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	addRowAt       int
	addRowFilters  map[string]string
	addRowChildren []string
)

var addRowCmd = &cobra.Command{
	Use:   "add-row <collection> [catalog-key]",
	Short: "Add a row on the server's character",
	Long: `Add a blank row, or with a catalog key the row built from that catalog item
(weapons, armor, spells and talents).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			children := make([]interface{}, 0, len(addRowChildren))
			for _, c := range addRowChildren {
				children = append(children, c)
			}
			filters := make(map[string]interface{}, len(addRowFilters))
			for k, v := range addRowFilters {
				filters[k] = v
			}
			return call(cmd, v1alpha1.MethodAddFromCatalog, map[string]interface{}{
				"collection": args[0],
				"key":        args[1],
				"filters":    filters,
				"children":   children,
			})
		}

		req := map[string]interface{}{"collection": args[0]}
		if cmd.Flags().Changed("at") {
			req["index"] = addRowAt
		}
		return call(cmd, v1alpha1.MethodAddRow, req)
	},
}

func init() {
	addRowCmd.Flags().IntVar(&addRowAt, "at", 0, "index to insert a blank row at")
	addRowCmd.Flags().StringToStringVar(&addRowFilters, "filter", nil, "picker filter value by name")
	addRowCmd.Flags().StringSliceVar(&addRowChildren, "child", nil, "child selection, in slot order")
}
