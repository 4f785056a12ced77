package main

import (
	"fmt"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for a config file user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			passwords, err := config.NewPasswordConfig()
			if err != nil {
				return fmt.Errorf("failed to load password config: %w", err)
			}
			hash, err := passwords.HashPassword(password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password to hash (required)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
