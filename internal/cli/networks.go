package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/swapguard/internal/cli/render"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available networks",
		Long: `List the built-in networks and those declared in swapguard.toml.

With --check, each public endpoint is dialed and its chain ID compared with
the configured one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			params := usecase.ListNetworksParams{Check: check}
			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Render output
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Dial each endpoint and verify its chain ID")

	return cmd
}
