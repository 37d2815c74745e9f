package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"mdr/internal/domain/entity"
	"mdr/internal/errors"
	"mdr/internal/infra/persistence/postgres"
	"mdr/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func provisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision a staff account and send its setup link",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			phone, _ := cmd.Flags().GetString("phone")
			roleName, _ := cmd.Flags().GetString("role")

			role, ok := entity.ParseRole(roleName)
			if !ok {
				return errors.Errorf("unknown role %q", roleName)
			}

			var accountUC usecase.AccountUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				account, err := accountUC.ProvisionAccount(ctx, &usecase.ProvisionAccountInput{
					Username:    username,
					Email:       email,
					PhoneNumber: phone,
					Role:        role,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "provisioned %s (%s) as %s\n", account.Username, account.ID, account.Role)

				return nil
			}, &accountUC)
		},
	}

	cmd.Flags().String("username", "", "Unique username")
	cmd.Flags().String("email", "", "Email address the setup link is sent to")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("role", entity.RoleAdmin.String(), "Role: Admin, Doctor or Staff")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var accountUC usecase.AccountUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				accounts, err := accountUC.ListAccounts(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tEMAIL\tVERIFIED")
				for _, account := range accounts {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
						account.ID, account.Username, account.Role, account.Email, account.IsVerified)
				}

				return errors.WithStack(w.Flush())
			}, &accountUC)
		},
	}
}

func inactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inactivate <account-id>",
		Short: "Mark an account unverified and clear its pending tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid account id")
			}

			var accountUC usecase.AccountUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				if err := accountUC.InactivateAccount(ctx, accountID); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "inactivated %s\n", accountID)

				return nil
			}, &accountUC)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the account tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			var db *gorm.DB

			return withApp(cmd.Context(), func(ctx context.Context) error {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")

				return nil
			}, &db)
		},
	}
}
