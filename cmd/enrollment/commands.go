package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/bootstrap"
	"github.com/Lexv0lk/course-store/internal/pkg/env"
	"github.com/Lexv0lk/course-store/internal/pkg/jwt"
	"github.com/Lexv0lk/course-store/internal/pkg/logging"
	"github.com/spf13/cobra"
)

const (
	networkProtocol = "tcp"
	defaultTokenTTL = 24 * time.Hour
)

func newRootCmd() *cobra.Command {
	var envFile string

	serveCmd := newServeCmd()

	rootCmd := &cobra.Command{
		Use:           "enrollment",
		Short:         "Course enrollment service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.LoadDotEnv(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}

			return nil
		},
		RunE: serveCmd.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file applied under the process environment")

	rootCmd.AddCommand(serveCmd, newMigrateCmd(), newTokenCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the enrollment HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadEnrollmentConfig()
			if err != nil {
				return err
			}

			logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			lis, err := net.Listen(networkProtocol, cfg.HttpPort)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cfg.HttpPort, err)
			}

			app := bootstrap.NewEnrollmentApp(cfg, logger)
			defer app.Shutdown()

			return app.Run(ctx, lis)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := bootstrap.LoadDatabaseSettings()
			if err != nil {
				return err
			}

			if err := bootstrap.Migrate(settings); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		userID   int
		username string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return errors.New("--user must be a positive id")
			}

			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}

			secret := ""
			env.TrySetFromEnv(env.EnvJwtSecret, &secret)
			if secret == "" {
				return fmt.Errorf("%s must be set", env.EnvJwtSecret)
			}

			token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(secret), userID, username, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "user id carried by the token")
	cmd.Flags().StringVar(&username, "username", "", "user name carried by the token")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
