// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides the relational data layer: connection setup,
// schema migrations and typed queries for menus, pages, profiles and the
// rendered menu cache.
package store

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver for database/sql
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // SQLite driver for database/sql
)

//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var migrations embed.FS

// Supported database drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// DBConfig sizes the connection pool.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultDBConfig returns the pool settings used by the server.
func DefaultDBConfig() DBConfig {
	return DBConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// sqlitePragmas are applied by the driver to every new connection, since
// foreign_keys and busy_timeout are per connection settings.
var sqlitePragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
	"foreign_keys(ON)",
	"temp_store(MEMORY)",
}

// sqliteDSN turns a database file path into a modernc.org/sqlite DSN
// carrying sqlitePragmas.
func sqliteDSN(path string) string {
	q := url.Values{}
	for _, p := range sqlitePragmas {
		q.Add("_pragma", p)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + path + sep + q.Encode()
}

// NewDB opens a SQLite database file with the default pool settings.
func NewDB(path string) (*sql.DB, error) {
	return Open(DriverSQLite, path, DefaultDBConfig())
}

// Open opens and pings a database. For SQLite dsn is a file path, for MySQL
// a go-sql-driver DSN such as user:pass@tcp(host:3306)/db?parseTime=true.
func Open(driver, dsn string, cfg DBConfig) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		dsn = sqliteDSN(dsn)
	case DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", driver, err)
	}

	return db, nil
}

// Migrate runs all pending SQLite migrations.
func Migrate(db *sql.DB) error {
	return MigrateDriver(db, DriverSQLite)
}

// MigrateDriver runs all pending migrations for the given driver.
func MigrateDriver(db *sql.DB, driver string) error {
	goose.SetBaseFS(migrations)

	dialect, dir := "sqlite3", "migrations/sqlite"
	if driver == DriverMySQL {
		dialect, dir = "mysql", "migrations/mysql"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
