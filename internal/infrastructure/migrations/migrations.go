// Package migrations aplica el esquema del catálogo con goose. Los SQL van embebidos por dialecto.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/pkg/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch driver {
	case config.DriverPostgres:
		dialect = goose.DialectPostgres
	case config.DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("migraciones: driver no soportado %q", driver)
	}
	fsys, err := fs.Sub(embedded, driver)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, db, fsys)
}

// Up aplica todas las migraciones pendientes.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	p, err := newProvider(db, driver)
	if err != nil {
		return err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("migraciones up: %w", err)
	}
	for _, r := range results {
		logResult(r)
	}
	if len(results) == 0 {
		log.Debug().Str("driver", driver).Msg("esquema al día")
	}
	return nil
}

// Down revierte la última migración aplicada.
func Down(ctx context.Context, db *sql.DB, driver string) error {
	p, err := newProvider(db, driver)
	if err != nil {
		return err
	}
	r, err := p.Down(ctx)
	if err != nil {
		return fmt.Errorf("migraciones down: %w", err)
	}
	logResult(r)
	return nil
}

// Status devuelve el estado de cada migración conocida.
func Status(ctx context.Context, db *sql.DB, driver string) ([]*goose.MigrationStatus, error) {
	p, err := newProvider(db, driver)
	if err != nil {
		return nil, err
	}
	return p.Status(ctx)
}

func logResult(r *goose.MigrationResult) {
	if r == nil || r.Source == nil {
		return
	}
	log.Info().
		Int64("version", r.Source.Version).
		Str("file", r.Source.Path).
		Str("direction", r.Direction).
		Dur("duration", r.Duration).
		Msg("migración aplicada")
}
