// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite opens the embedded catalog database used by the sqlite
// storage driver.
//
// # Architecture
//
// The database file holds the same three tables as the PostgreSQL schema
// (aggregate, node, identityblock) with schema-less names. They are created
// on open, so no migration step is needed for this driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/taibuivan/catalog/internal/platform/database/schema"
)

// pingTimeout is the maximum duration for a health check ping.
const pingTimeout = 2 * time.Second

// Open creates (if needed) and opens the database file at path.
//
// A single connection is used: SQLite serializes writers anyway, and sharing
// one connection keeps in-process transactions from failing with SQLITE_BUSY.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if path == "" {
		path = "catalog.db"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("sqlite: create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite_database_opened", slog.String("path", path))
	return db, nil
}

// Ping verifies that the database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	aggregate := schema.CatalogAggregate.Local()
	node := schema.CatalogNode.Local()
	block := schema.CatalogIdentityBlock.Local()

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			%s INTEGER PRIMARY KEY,
			%s TEXT NOT NULL,
			%s TEXT NOT NULL UNIQUE,
			%s INTEGER NOT NULL,
			%s TEXT NOT NULL,
			%s TEXT NOT NULL
		)`, aggregate.Table, aggregate.ID, aggregate.Kind, aggregate.UUID, aggregate.Version, aggregate.Facets, aggregate.Payload),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_kind_idx ON %s (%s, %s)`,
			aggregate.Table, aggregate.Table, aggregate.Kind, aggregate.ID),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			%s TEXT PRIMARY KEY,
			%s INTEGER NOT NULL,
			%s TEXT NOT NULL
		)`, node.Table, node.UUID, node.RootID, node.Kind),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_root_idx ON %s (%s)`, node.Table, node.Table, node.RootID),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			%s TEXT PRIMARY KEY,
			%s INTEGER NOT NULL
		)`, block.Table, block.Name, block.NextValue),

		fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s, %s) VALUES ('%s', 1)`,
			block.Table, block.Name, block.NextValue, schema.NodeSequence),
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("sqlite: create tables: %w", err)
		}
	}
	return nil
}
