package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	listFilters map[string]string
	listEdit    int
)

var listOptionsCmd = &cobra.Command{
	Use:   "list-options <collection>",
	Short: "List what a catalog picker offers on the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := make(map[string]interface{}, len(listFilters))
		for k, v := range listFilters {
			filters[k] = v
		}
		req := map[string]interface{}{
			"collection": args[0],
			"filters":    filters,
		}
		if cmd.Flags().Changed("edit") {
			req["editIndex"] = listEdit
		}
		return call(cmd, v1alpha1.MethodListOptions, req)
	},
}

func init() {
	listOptionsCmd.Flags().StringToStringVar(&listFilters, "filter", nil, "filter value by name")
	listOptionsCmd.Flags().IntVar(&listEdit, "edit", 0, "open on this row and mark its item")
}
