// Package database manages the PostgreSQL connection pool and schema
// migrations. Connections use the pgx database/sql driver; migrations are
// applied from an embedded filesystem with golang-migrate on startup.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/load-planner/pkg/lifecycle"
)

// System exposes the connection pool and registers its lifecycle hooks.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn       *sql.DB
	cfg        *Config
	migrations fs.FS
	logger     *slog.Logger
}

// New opens (but does not ping) the connection pool. When migrations is
// non-nil its *.sql files are applied during startup.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:       db,
		cfg:        cfg,
		migrations: migrations,
		logger:     logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database system", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnStartup(func() {
		pingCtx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.conn.PingContext(pingCtx); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return
		}
		d.logger.Info("database connection established")

		if d.migrations == nil {
			return
		}
		if err := Migrate(d.cfg, d.migrations); err != nil {
			d.logger.Error("database migration failed", "error", err)
			return
		}
		d.logger.Info("database migrations applied")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
		}
	})

	return nil
}

// Migrate applies all pending up migrations found at the root of migrations.
// It uses a dedicated connection pool so closing the migrator never touches
// the service pool.
func Migrate(cfg *Config, migrations fs.FS) error {
	src, err := iofs.New(migrations, ".")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}

	drv, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", drv)
	if err != nil {
		db.Close()
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
