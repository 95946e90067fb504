// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/internal/platform/migration"
)

func TestDriverURL(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@db:5432/catalog":   "pgx5://u:p@db:5432/catalog",
		"postgresql://u:p@db:5432/catalog": "pgx5://u:p@db:5432/catalog",
		"pgx5://db/catalog":                "pgx5://db/catalog",
		"host=db dbname=catalog":           "host=db dbname=catalog",
	}

	for dsn, want := range cases {
		assert.Equal(t, want, migration.DriverURL(dsn), dsn)
	}
}
