package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quytran/folio/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash an admin password for ADMIN_PASSWORD_HASH",
	Long:  `Hash the given password with bcrypt (honoring BCRYPT_COST and PASSWORD_PEPPER) and print the hash to store in ADMIN_PASSWORD_HASH.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, args []string) error {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	hash, err := passwordConfig.HashPassword(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
