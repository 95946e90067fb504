// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// SQLiteSequence reserves blocks from the catalog_identityblock counter row.
//
// SQLite serializes writers, so the single UPDATE ... RETURNING is atomic.
type SQLiteSequence struct {
	db   *sql.DB
	name string
}

// NewSQLiteSequence constructs a [SQLiteSequence] over the named counter.
func NewSQLiteSequence(db *sql.DB, name string) *SQLiteSequence {
	return &SQLiteSequence{db: db, name: name}
}

// Reserve implements [Sequence].
func (sequence *SQLiteSequence) Reserve(context context.Context, n int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("identity: block size must be positive, got %d", n)
	}

	var first int64
	err := sequence.db.QueryRowContext(context, reserveQuery(schema.CatalogIdentityBlock.Local(), "?1", "?2"), sequence.name, n).Scan(&first)
	return first, dberr.Wrap(err, "reserve_identity_block")
}
