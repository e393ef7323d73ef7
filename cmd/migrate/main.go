package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/migrations"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migraciones del esquema del catálogo",
		Long:          "Aplica, revierte o lista las migraciones embebidas para el DB_DRIVER configurado (postgres o sqlite).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica las migraciones pendientes",
			RunE: withDB(func(ctx context.Context, db *sql.DB, driver string) error {
				return migrations.Up(ctx, db, driver)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revierte la última migración aplicada",
			RunE: withDB(func(ctx context.Context, db *sql.DB, driver string) error {
				return migrations.Down(ctx, db, driver)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Lista el estado de cada migración",
			RunE: withDB(func(ctx context.Context, db *sql.DB, driver string) error {
				list, err := migrations.Status(ctx, db, driver)
				if err != nil {
					return err
				}
				for _, s := range list {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Printf("%05d  %-8s  %s  %s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return nil
			}),
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withDB carga configuración y logger, abre la base del driver elegido y ejecuta fn.
func withDB(fn func(ctx context.Context, db *sql.DB, driver string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var db *sql.DB
		if cfg.DB.Driver == config.DriverSQLite {
			db, err = sqlite.Open(cfg.DB.SQLitePath)
			if err != nil {
				return err
			}
		} else {
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()
			db = postgres.OpenDB(pool)
		}
		defer db.Close()

		log.Info().Str("driver", cfg.DB.Driver).Str("command", cmd.Name()).Msg("migraciones")
		return fn(ctx, db, cfg.DB.Driver)
	}
}
