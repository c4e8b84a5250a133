// Package db owns the lifecycle of the PostgreSQL connection pool:
// it is opened once in main, migrated, handed to repositories and
// closed on shutdown.
package db

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/Shoyeb45/u-tube/internal/logger"
	"github.com/Shoyeb45/u-tube/internal/migrations"
)

// DSN joins the database URI and name the way the service is configured:
// DATABASE_URI holds scheme, credentials and host, DB_NAME the database.
func DSN(uri, name, sslMode string) string {
	dsn := strings.TrimRight(uri, "/") + "/" + name
	if sslMode != "" {
		dsn += "?sslmode=" + sslMode
	}
	return dsn
}

// Connect opens and pings a PostgreSQL pool through the pgx stdlib driver.
func Connect(ctx context.Context, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate applies all embedded migrations that have not run yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db.DB)
	if err == nil {
		logger.Log.Infow("database migrated", "version", version)
	}
	return nil
}
