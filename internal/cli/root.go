package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/swapguard/internal/adapters/progress"
	"github.com/trebuchet-org/swapguard/internal/app"
	"github.com/trebuchet-org/swapguard/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"

	// skipAppAnnotation marks commands that run without config or adapters
	skipAppAnnotation = "swapguard/skip-app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cleanup func()

	rootCmd := &cobra.Command{
		Use:   "swapguard",
		Short: "Pre-trade warnings and transaction submission for EVM swaps",
		Long: `swapguard evaluates swap form snapshots into warnings (insufficient funds,
price impact, routing and connectivity problems), and signs, broadcasts and
tracks transactions for configured accounts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version and offline-only commands
			if skipsApp(cmd) {
				return nil
			}

			// Set up viper
			v := config.SetupViper(config.DefaultDataDir(), cmd)

			// Create progress sink
			sink := progress.NewSink(v.GetBool("json") || v.GetBool("non_interactive"))

			// Initialize app with DI
			appInstance, appCleanup, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			cleanup = func() {
				progress.Done(sink)
				appCleanup()
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				prev := cleanup
				cleanup = func() {
					cancel()
					prev()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (defaults to ~/.swapguard)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (name or chain ID)")
	rootCmd.PersistentFlags().String("platform", "", "Display rules to apply: native or web")
	rootCmd.PersistentFlags().String("locale", "", "Language for warning copy (e.g. en, es)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "main"
	rootCmd.AddCommand(checkCmd)

	sendCmd := NewSendCmd()
	sendCmd.GroupID = "main"
	rootCmd.AddCommand(sendCmd)

	txCmd := NewTxCmd()
	txCmd.GroupID = "main"
	rootCmd.AddCommand(txCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	addressCmd := NewAddressCmd()
	addressCmd.GroupID = "management"
	rootCmd.AddCommand(addressCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipsApp reports whether cmd or any parent is marked to run without the app
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete":
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipAppAnnotation] == "true" {
			return true
		}
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
