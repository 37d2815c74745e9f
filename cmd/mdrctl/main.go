// Command mdrctl administers accounts directly against the database.
package main

import (
	"context"
	"os"

	"mdr/config"
	"mdr/internal/infra/auth"
	logs "mdr/internal/infra/log"
	"mdr/internal/infra/notification"
	"mdr/internal/infra/persistence/postgres"
	"mdr/internal/infra/pubsub"
	"mdr/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "mdrctl",
		Short:        "Medical records account administration",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(provisionCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(inactivateCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withApp starts the account graph, populates targets and runs fn before stopping it again.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewSystemClock,
			auth.NewTokenPolicy,
			auth.NewBcryptHasher,
			auth.NewPasswordGenerator,
			auth.NewJWTService,
			notification.NewLinkBuilder,
			pubsub.NewNotificationDispatcher,
			impl.NewAccountService,
		),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	return fn(ctx)
}
