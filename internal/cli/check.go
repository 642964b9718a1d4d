package cli

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/swapguard/internal/cli/render"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// ErrBlockingWarning is returned by check --fail-on-blocking
var ErrBlockingWarning = errors.New("swap has a blocking warning")

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var (
		offline           bool
		gasFee            string
		nativeBalance     string
		bridgingDismissed bool
		failOnBlocking    bool
	)

	cmd := &cobra.Command{
		Use:   "check <snapshots.yaml>",
		Short: "Evaluate swap form snapshots into warnings",
		Long: `Evaluate every swap form snapshot in a YAML file and print the warnings a
wallet would show: the blocking warning, the form and review screen banners,
and the insufficient balance, gas and price impact warnings.

Connectivity is checked against the selected --network unless --offline is set.`,
		Example: `  swapguard check swaps.yaml
  swapguard check swaps.yaml --offline --json
  swapguard check swaps.yaml --gas-fee 210000000000000 --native-balance 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			fee, err := parseWeiFlag("gas-fee", gasFee)
			if err != nil {
				return err
			}
			balance, err := parseWeiFlag("native-balance", nativeBalance)
			if err != nil {
				return err
			}

			snapshots, err := app.SnapshotLoader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			checks := make([]render.NamedCheck, 0, len(snapshots))
			blocked := false
			for _, snapshot := range snapshots {
				params := usecase.CheckSwapParams{
					Info:              snapshot.Info,
					GasFee:            snapshot.GasFee,
					NativeBalance:     snapshot.NativeBalance,
					GasFeeUSD:         snapshot.GasFeeUSD,
					ForceOffline:      offline,
					BridgingDismissed: bridgingDismissed,
				}
				if fee != nil {
					params.GasFee = fee
				}
				if balance != nil {
					params.NativeBalance = balance
				}

				result, err := app.CheckSwap.Run(cmd.Context(), params)
				if err != nil {
					return fmt.Errorf("%s: %w", snapshot.Name, err)
				}
				if result.Parsed.BlockingWarning != nil {
					blocked = true
				}
				checks = append(checks, render.NamedCheck{Name: snapshot.Name, Result: result})
			}

			renderer := render.NewWarningsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			if err := renderer.Render(checks); err != nil {
				return err
			}

			if failOnBlocking && blocked {
				return ErrBlockingWarning
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Treat the wallet as offline without checking connectivity")
	cmd.Flags().StringVar(&gasFee, "gas-fee", "", "Override every snapshot's gas fee (wei)")
	cmd.Flags().StringVar(&nativeBalance, "native-balance", "", "Override every snapshot's native balance (wei)")
	cmd.Flags().BoolVar(&bridgingDismissed, "bridging-dismissed", false, "Suppress the bridging notice")
	cmd.Flags().BoolVar(&failOnBlocking, "fail-on-blocking", false, "Exit with an error when any snapshot is blocked")

	return cmd
}

// parseWeiFlag parses a base-10 wei amount; empty means unset
func parseWeiFlag(name, value string) (*big.Int, error) {
	if value == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(value, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid --%s %q: expected a non-negative integer in wei", name, value)
	}
	return v, nil
}
