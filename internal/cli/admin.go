package cli

import (
	"fmt"

	"gym_backend/internal/repositories"
	"gym_backend/internal/services"

	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account for the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		// token issuing is not needed to store an account
		authService := services.NewAuthService(repositories.NewAuthRepository(db), nil, nil)
		admin, err := authService.CreateAdmin(cmd.Context(), adminUsername, adminPassword)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Admin '%s' created (id %d)\n", admin.Username, admin.ID)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	adminCreateCmd.MarkFlagRequired("username")
	adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}
