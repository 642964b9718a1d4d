package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/swapguard/internal/domain"
)

// NewAddressCmd creates the address command group
func NewAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "address",
		Short:       "Validate and format addresses",
		Annotations: map[string]string{skipAppAnnotation: "true"},
	}

	cmd.AddCommand(newAddressValidateCmd())
	cmd.AddCommand(newAddressShortenCmd())

	return cmd
}

func newAddressValidateCmd() *cobra.Command {
	var checksum bool

	cmd := &cobra.Command{
		Use:   "validate <address>",
		Short: "Print the normalized address, or fail when it is invalid",
		Long: `Print the address lowercased, or in EIP-55 checksum form with --checksum.
Input is 40 hex digits with an optional 0x prefix. Mixed-case input must carry
a valid checksum when --checksum is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid, ok := domain.GetValidAddress(args[0], checksum)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), valid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checksum, "checksum", false, "Print the EIP-55 checksummed form")

	return cmd
}

func newAddressShortenCmd() *cobra.Command {
	var chars int

	cmd := &cobra.Command{
		Use:   "shorten <address>",
		Short: "Print an address as 0x1234...abcd",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := domain.ShortenAddress(args[0], chars)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), short)
			return nil
		},
	}

	cmd.Flags().IntVar(&chars, "chars", domain.DefaultShortenChars, "Hex digits kept on each side (1-19)")

	return cmd
}
