package client

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/handlers/sheet/v1alpha1"
)

var asText bool

var updateFieldCmd = &cobra.Command{
	Use:   "update-field <field> <value>",
	Short: "Set a field on the server's character",
	Long: `Set a field on the server's character. Values that read as integers are sent
as numbers unless --text is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value interface{} = args[1]
		if n, err := strconv.Atoi(args[1]); err == nil && !asText {
			value = n
		}
		return call(cmd, v1alpha1.MethodUpdateField, map[string]interface{}{
			"key":   args[0],
			"value": value,
		})
	},
}

func init() {
	updateFieldCmd.Flags().BoolVar(&asText, "text", false, "send the value as text")
}
