// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies PostgreSQL and SQLite errors raised by the catalog
// store and identity sequences into [apperr.AppError] values.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// sqliteUnique prefixes the message of SQLITE_CONSTRAINT_UNIQUE and
// SQLITE_CONSTRAINT_PRIMARYKEY failures.
const sqliteUnique = "UNIQUE constraint failed"

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrDuplicate is returned when an insert collides with an existing key.
	ErrDuplicate = apperr.Conflict("DUPLICATE_KEY", "Resource already exists")
)

/*
Wrap classifies err raised while performing action.

Returns:
  - nil for nil, err unchanged when it is already an [apperr.AppError]
  - [ErrNotFound] for empty single-row results
  - [ErrDuplicate] for unique constraint failures
  - INTERNAL_ERROR (500) otherwise, with "<action>: <err>" as its hidden cause
*/
func Wrap(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case apperr.IsAppError(err):
		return err
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case IsUniqueViolation(err):
		return ErrDuplicate
	}
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a unique constraint failure from
// PostgreSQL or SQLite.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return strings.Contains(err.Error(), sqliteUnique)
}
