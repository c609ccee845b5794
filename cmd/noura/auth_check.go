package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nouralabs/accounting/internal/services"
)

var (
	authUsername string
	authPassword string
	authLicense  string
)

// auth-check verifies a credential triple without starting the UI. Useful
// when a customer reports being locked out.
var authCheckCmd = &cobra.Command{
	Use:   "auth-check",
	Short: "Verify an admin username/password/license triple",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB()
		if err != nil {
			return err
		}
		ok, err := services.NewCredentialService(gdb).Authenticate(authUsername, authPassword, authLicense)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("authentication failed")
		}
		fmt.Println("Credentials valid.")
		return nil
	},
}

func init() {
	authCheckCmd.Flags().StringVar(&authUsername, "username", "", "admin username")
	authCheckCmd.Flags().StringVar(&authPassword, "password", "", "admin password")
	authCheckCmd.Flags().StringVar(&authLicense, "license", "", "license key")
	_ = authCheckCmd.MarkFlagRequired("username")
	_ = authCheckCmd.MarkFlagRequired("password")
	_ = authCheckCmd.MarkFlagRequired("license")
}
