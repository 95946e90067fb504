// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// SQLite is a [Backend] over an embedded database opened by the sqlite package.
//
// Facets and payload are stored as JSON text; predicates use json_extract.
type SQLite struct {
	db        *sql.DB
	aggregate schema.CatalogAggregateTable
	node      schema.CatalogNodeTable
	columns   string
}

// NewSQLite constructs a [SQLite] backend.
func NewSQLite(db *sql.DB) *SQLite {
	local := schema.CatalogAggregate.Local()
	return &SQLite{
		db:        db,
		aggregate: local,
		node:      schema.CatalogNode.Local(),
		columns:   strings.Join(local.Columns(), ", "),
	}
}

// Get implements [Backend].
func (repository *SQLite) Get(context context.Context, kind, uuid string) (Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? AND %s = ?`,
		repository.columns, repository.aggregate.Table, repository.aggregate.Kind, repository.aggregate.UUID,
	)

	record, err := scanSQLiteRecord(repository.db.QueryRowContext(context, query, kind, uuid))
	return record, dberr.Wrap(err, "get_aggregate")
}

// GetByNode implements [Backend].
func (repository *SQLite) GetByNode(context context.Context, kind, nodeUUID string) (Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? AND %s = (SELECT %s FROM %s WHERE %s = ?)`,
		repository.columns, repository.aggregate.Table,
		repository.aggregate.Kind, repository.aggregate.ID,
		repository.node.RootID, repository.node.Table, repository.node.UUID,
	)

	record, err := scanSQLiteRecord(repository.db.QueryRowContext(context, query, kind, nodeUUID))
	return record, dberr.Wrap(err, "get_aggregate_by_node")
}

// Search implements [Backend].
func (repository *SQLite) Search(context context.Context, kind string, criteria Criteria, limit, offset int) ([]Record, int, error) {
	where := []string{repository.aggregate.Kind + " = ?"}
	args := []any{kind}

	for _, p := range criteria.predicates() {
		extract := fmt.Sprintf("json_extract(%s, ?)", repository.aggregate.Facets)
		if p.contains {
			where = append(where, fmt.Sprintf("instr(%s, ?) > 0", extract))
		} else {
			where = append(where, extract+" = ?")
		}
		args = append(args, `$."`+p.key+`"`, p.value)
	}

	filter := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, repository.aggregate.Table, filter)
	if err := repository.db.QueryRowContext(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_aggregates")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC LIMIT ? OFFSET ?`,
		repository.columns, repository.aggregate.Table, filter, repository.aggregate.ID,
	)

	rows, err := repository.db.QueryContext(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_aggregates")
	}
	defer func() { _ = rows.Close() }()

	records := make([]Record, 0, limit)
	for rows.Next() {
		record, err := scanSQLiteRecord(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_aggregate")
		}
		records = append(records, record)
	}

	return records, total, dberr.Wrap(rows.Err(), "search_aggregates")
}

// Count implements [Backend].
func (repository *SQLite) Count(context context.Context, kind string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = ?`, repository.aggregate.Table, repository.aggregate.Kind)

	var total int
	err := repository.db.QueryRowContext(context, query, kind).Scan(&total)
	return total, dberr.Wrap(err, "count_aggregates")
}

// Exists implements [Backend].
func (repository *SQLite) Exists(context context.Context, kind, uuid string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ? AND %s = ?)`,
		repository.aggregate.Table, repository.aggregate.Kind, repository.aggregate.UUID,
	)

	var exists bool
	err := repository.db.QueryRowContext(context, query, kind, uuid).Scan(&exists)
	return exists, dberr.Wrap(err, "exists_aggregate")
}

// Put implements [Backend]. The row and its node index are written in one transaction.
func (repository *SQLite) Put(context context.Context, record Record) (version int64, retErr error) {
	facets, err := json.Marshal(record.Facets)
	if err != nil {
		return 0, dberr.Wrap(err, "encode_facets")
	}

	tx, err := repository.db.BeginTx(context, nil)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_put_aggregate")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Insert or compare-and-swap the root row
	aggregate := repository.aggregate
	if record.Version == 0 {
		query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES (?, ?, ?, 1, ?, ?)`,
			aggregate.Table, aggregate.ID, aggregate.Kind, aggregate.UUID, aggregate.Version, aggregate.Facets, aggregate.Payload,
		)
		if _, err := tx.ExecContext(context, query, record.ID, record.Kind, record.UUID, string(facets), string(record.Payload)); err != nil {
			return 0, dberr.Wrap(err, "insert_aggregate")
		}
		version = 1
	} else {
		query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1, %s = ?, %s = ? WHERE %s = ? AND %s = ?`,
			aggregate.Table, aggregate.Version, aggregate.Version, aggregate.Facets, aggregate.Payload,
			aggregate.UUID, aggregate.Version,
		)
		result, err := tx.ExecContext(context, query, string(facets), string(record.Payload), record.UUID, record.Version)
		if err != nil {
			return 0, dberr.Wrap(err, "update_aggregate")
		}
		if affected, err := result.RowsAffected(); err != nil || affected == 0 {
			return 0, ErrConcurrentModification
		}
		version = record.Version + 1
	}

	// 2. Replace the node index of the root
	deleteNodes := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, repository.node.Table, repository.node.RootID)
	if _, err := tx.ExecContext(context, deleteNodes, record.ID); err != nil {
		return 0, dberr.Wrap(err, "delete_nodes")
	}

	insertNode := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)`,
		repository.node.Table, repository.node.UUID, repository.node.RootID, repository.node.Kind,
	)
	for _, nodeUUID := range record.Nodes {
		if _, err := tx.ExecContext(context, insertNode, nodeUUID, record.ID, record.Kind); err != nil {
			return 0, dberr.Wrap(err, "insert_node")
		}
	}

	// 3. Commit
	if err := tx.Commit(); err != nil {
		return 0, dberr.Wrap(err, "commit_put_aggregate")
	}
	return version, nil
}

// Delete implements [Backend]. Node rows are removed in the same transaction.
func (repository *SQLite) Delete(context context.Context, kind, uuid string) (retErr error) {
	tx, err := repository.db.BeginTx(context, nil)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_aggregate")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	var id int64
	selectID := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? AND %s = ?`,
		repository.aggregate.ID, repository.aggregate.Table, repository.aggregate.Kind, repository.aggregate.UUID,
	)
	if err := tx.QueryRowContext(context, selectID, kind, uuid).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return dberr.Wrap(err, "delete_aggregate")
	}

	deleteNodes := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, repository.node.Table, repository.node.RootID)
	if _, err := tx.ExecContext(context, deleteNodes, id); err != nil {
		return dberr.Wrap(err, "delete_nodes")
	}

	deleteRoot := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, repository.aggregate.Table, repository.aggregate.ID)
	if _, err := tx.ExecContext(context, deleteRoot, id); err != nil {
		return dberr.Wrap(err, "delete_aggregate")
	}

	return dberr.Wrap(tx.Commit(), "commit_delete_aggregate")
}

// sqlScanner is satisfied by *sql.Row and *sql.Rows.
type sqlScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteRecord(row sqlScanner) (Record, error) {
	var (
		record  Record
		facets  string
		payload string
	)

	if err := row.Scan(&record.ID, &record.Kind, &record.UUID, &record.Version, &facets, &payload); err != nil {
		return Record{}, err
	}

	if err := json.Unmarshal([]byte(facets), &record.Facets); err != nil {
		return Record{}, fmt.Errorf("decode facets: %w", err)
	}
	record.Payload = []byte(payload)
	return record, nil
}
