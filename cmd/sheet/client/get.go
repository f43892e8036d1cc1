package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/handlers/sheet/v1alpha1"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the server's current character",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodGetCharacter, nil)
	},
}
