// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// PostgresSequence reserves blocks from the catalog.identityblock counter row.
//
// The UPDATE takes a row lock, so concurrent reservations are serialized by
// PostgreSQL and each receives a disjoint range.
type PostgresSequence struct {
	db   *pgxpool.Pool
	name string
}

// NewPostgresSequence constructs a [PostgresSequence] over the named counter.
func NewPostgresSequence(db *pgxpool.Pool, name string) *PostgresSequence {
	return &PostgresSequence{db: db, name: name}
}

// Reserve implements [Sequence].
func (sequence *PostgresSequence) Reserve(context context.Context, n int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("identity: block size must be positive, got %d", n)
	}

	var first int64
	err := sequence.db.QueryRow(context, reserveQuery(schema.CatalogIdentityBlock, "$1", "$2"), sequence.name, n).Scan(&first)
	return first, dberr.Wrap(err, "reserve_identity_block")
}

// reserveQuery builds the counter bump shared by the SQL sequences.
func reserveQuery(table schema.CatalogIdentityBlockTable, name, n string) string {
	return fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + %s
		WHERE %s = %s
		RETURNING %s - %s
	`,
		table.Table,
		table.NextValue, table.NextValue, n,
		table.Name, name,
		table.NextValue, n,
	)
}
