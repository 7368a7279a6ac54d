package cli

import (
	"ITInventory/internal/repo"
	"ITInventory/internal/service"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and remember the user for later commands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password := args[0], args[1]
			return a.withStore(cmd.Context(), func(r repo.Repository) error {
				u, err := service.NewUserService(r, a.log).Authenticate(cmd.Context(), username, password)
				if err != nil {
					return err
				}
				if err := a.sessions().SaveLogin(u.Username); err != nil {
					return fmt.Errorf("saving session: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", u.Username)
				return nil
			})
		},
	}
}

func newLogoutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions().Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(r repo.Repository) error {
				login, err := a.requireLogin(cmd.Context(), r)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), login)
				return nil
			})
		},
	}
}

// reset-admin works without a session: it is the recovery path for a lost password.
func newResetAdminCmd(a *App) *cobra.Command {
	var username, password, confirm string
	cmd := &cobra.Command{
		Use:   "reset-admin",
		Short: "Set a new password for the admin account (creates it when missing)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(r repo.Repository) error {
				created, err := service.NewUserService(r, a.log).ResetPassword(cmd.Context(), username, password, confirm)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "User %s created\n", username)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Password for %s updated\n", username)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "account to reset")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "new password again")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}
