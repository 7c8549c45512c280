package main

import (
	"fmt"

	"resort-engine/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func purgeCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-codes",
		Short: "Delete expired verification codes",
		Long:  "Delete expired verification codes. Expiry is enforced on every verification, so this is housekeeping only.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var customers commands.CustomerCommands
			return withEngine(cmd.Context(), func() error {
				n, err := customers.PurgeExpiredCodes(cmd.Context())
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(map[string]int64{"purged": n})
				}
				fmt.Printf("purged %d expired code(s)\n", n)
				return nil
			}, &customers)
		},
	}
}
