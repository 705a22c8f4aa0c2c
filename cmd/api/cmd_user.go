package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgemunganga/storeadmin/internal/modules/user"
)

var (
	userEmail    string
	userPassword string
	userName     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage dashboard accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDB()
		if err != nil {
			return err
		}
		defer d.Close()

		svc := user.NewService(user.NewSQLRepository(d))
		u, err := svc.RegisterUser(cmd.Context(), user.RegisterInput{Email: userEmail, Password: userPassword, Name: userName})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u.ID)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "account email")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "account password (at least 8 characters)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userCreateCmd)
}
