// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// Postgres is a [Backend] over the catalog.aggregate and catalog.node tables.
//
// Payload and facets are stored as JSONB; search predicates are evaluated
// against the facets column.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres constructs a [Postgres] backend.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

var (
	aggregate = schema.CatalogAggregate
	node      = schema.CatalogNode
)

// selectColumns lists the record columns in scan order.
var selectColumns = strings.Join(aggregate.Columns(), ", ")

// Get implements [Backend].
func (repository *Postgres) Get(context context.Context, kind, uuid string) (Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		selectColumns, aggregate.Table, aggregate.Kind, aggregate.UUID,
	)

	record, err := scanRecord(repository.db.QueryRow(context, query, kind, uuid))
	return record, dberr.Wrap(err, "get_aggregate")
}

// GetByNode implements [Backend].
func (repository *Postgres) GetByNode(context context.Context, kind, nodeUUID string) (Record, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = (SELECT %s FROM %s WHERE %s = $2)
	`,
		selectColumns, aggregate.Table,
		aggregate.Kind, aggregate.ID, node.RootID, node.Table, node.UUID,
	)

	record, err := scanRecord(repository.db.QueryRow(context, query, kind, nodeUUID))
	return record, dberr.Wrap(err, "get_aggregate_by_node")
}

// Search implements [Backend].
func (repository *Postgres) Search(context context.Context, kind string, criteria Criteria, limit, offset int) ([]Record, int, error) {
	where := []string{aggregate.Kind + " = $1"}
	args := []any{kind}

	for _, p := range criteria.predicates() {
		args = append(args, p.key, p.value)
		key, value := "$"+itos(len(args)-1)+"::text", "$"+itos(len(args))+"::text"

		if p.contains {
			where = append(where, fmt.Sprintf("strpos(%s->>%s, %s) > 0", aggregate.Facets, key, value))
		} else {
			where = append(where, fmt.Sprintf("%s->>%s = %s", aggregate.Facets, key, value))
		}
	}

	filter := strings.Join(where, " AND ")
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, aggregate.Table, filter)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_aggregates")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC LIMIT $%d OFFSET $%d`,
		selectColumns, aggregate.Table, filter, aggregate.ID, len(args)+1, len(args)+2,
	)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_aggregates")
	}
	defer rows.Close()

	records := make([]Record, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_aggregate")
		}
		records = append(records, record)
	}

	return records, total, dberr.Wrap(rows.Err(), "search_aggregates")
}

// Count implements [Backend].
func (repository *Postgres) Count(context context.Context, kind string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, aggregate.Table, aggregate.Kind)

	var total int
	err := repository.db.QueryRow(context, query, kind).Scan(&total)
	return total, dberr.Wrap(err, "count_aggregates")
}

// Exists implements [Backend].
func (repository *Postgres) Exists(context context.Context, kind, uuid string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		aggregate.Table, aggregate.Kind, aggregate.UUID,
	)

	var exists bool
	err := repository.db.QueryRow(context, query, kind, uuid).Scan(&exists)
	return exists, dberr.Wrap(err, "exists_aggregate")
}

// Put implements [Backend]. The row and its node index are written in one transaction.
func (repository *Postgres) Put(context context.Context, record Record) (int64, error) {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_put_aggregate")
	}
	defer func() { _ = tx.Rollback(context) }()

	version, err := putAggregate(context, tx, record)
	if err != nil {
		return 0, err
	}

	// 1. Replace the node index of the root
	deleteNodes := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, node.Table, node.RootID)
	if _, err := tx.Exec(context, deleteNodes, record.ID); err != nil {
		return 0, dberr.Wrap(err, "delete_nodes")
	}

	if len(record.Nodes) > 0 {
		insertNodes := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s)
			SELECT unnest($1::text[]), $2, $3
		`, node.Table, node.UUID, node.RootID, node.Kind)

		if _, err := tx.Exec(context, insertNodes, record.Nodes, record.ID, record.Kind); err != nil {
			return 0, dberr.Wrap(err, "insert_nodes")
		}
	}

	// 2. Commit
	if err := tx.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_put_aggregate")
	}

	return version, nil
}

func putAggregate(context context.Context, tx pgx.Tx, record Record) (int64, error) {
	var version int64

	if record.Version == 0 {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, 1, $4, $5)
			RETURNING %s
		`,
			aggregate.Table, aggregate.ID, aggregate.Kind, aggregate.UUID, aggregate.Version, aggregate.Facets, aggregate.Payload,
			aggregate.Version,
		)

		err := tx.QueryRow(context, query, record.ID, record.Kind, record.UUID, record.Facets, record.Payload).Scan(&version)
		return version, dberr.Wrap(err, "insert_aggregate")
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + 1, %s = $3, %s = $4
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		aggregate.Table,
		aggregate.Version, aggregate.Version, aggregate.Facets, aggregate.Payload,
		aggregate.UUID, aggregate.Version,
		aggregate.Version,
	)

	err := tx.QueryRow(context, query, record.UUID, record.Version, record.Facets, record.Payload).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrConcurrentModification
	}
	return version, dberr.Wrap(err, "update_aggregate")
}

// Delete implements [Backend]. Node rows are removed by ON DELETE CASCADE.
func (repository *Postgres) Delete(context context.Context, kind, uuid string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, aggregate.Table, aggregate.Kind, aggregate.UUID)

	cmd, err := repository.db.Exec(context, query, kind, uuid)
	if err != nil {
		return dberr.Wrap(err, "delete_aggregate")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanRecord reads one row in [selectColumns] order. Node uuids are not
// loaded; they are derived from the payload on the next write.
func scanRecord(row pgx.Row) (Record, error) {
	var record Record
	err := row.Scan(&record.ID, &record.Kind, &record.UUID, &record.Version, &record.Facets, &record.Payload)
	return record, err
}

func itos(i int) string {
	return strconv.Itoa(i)
}
