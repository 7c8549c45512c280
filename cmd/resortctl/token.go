package main

import (
	"fmt"
	"time"

	"resort-engine/cmd/bootstrap"
	"resort-engine/internal/domain/customer"
	"resort-engine/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// tokenCmd issues bearer tokens; staff accounts are not self-registered.
func tokenCmd() *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a customer or staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := customer.NewRole(role)
			if err != nil {
				return err
			}
			id := uuid.New()
			if subject != "" {
				if id, err = uuid.Parse(subject); err != nil {
					return fmt.Errorf("--subject: %w", err)
				}
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			tokens, err := bootstrap.NewJWTService(cfg)
			if err != nil {
				return err
			}

			token, err := tokens.GenerateToken(id, r, time.Now())
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(map[string]string{"subject": id.String(), "role": r.String(), "access_token": token})
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject ID (random when empty)")
	cmd.Flags().StringVar(&role, "role", customer.RoleStaff.String(), "customer or staff")
	return cmd
}
