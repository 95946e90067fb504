package schema

import "strings"

// CatalogAggregateTable represents the 'catalog.aggregate' table.
//
// One row holds an aggregate root together with its whole owned subtree,
// serialized as a JSON document.
type CatalogAggregateTable struct {
	Table   string
	ID      string
	Kind    string
	UUID    string
	Version string
	Facets  string
	Payload string
}

// CatalogAggregate is the schema definition for catalog.aggregate
var CatalogAggregate = CatalogAggregateTable{
	Table:   "catalog.aggregate",
	ID:      "id",
	Kind:    "kind",
	UUID:    "uuid",
	Version: "version",
	Facets:  "facets",
	Payload: "payload",
}

func (t CatalogAggregateTable) Columns() []string {
	return []string{t.ID, t.Kind, t.UUID, t.Version, t.Facets, t.Payload}
}

// Local returns the definition with a schema-less table name for SQLite.
func (t CatalogAggregateTable) Local() CatalogAggregateTable {
	t.Table = local(t.Table)
	return t
}

// local flattens "schema.table" into "schema_table".
func local(table string) string {
	return strings.ReplaceAll(table, ".", "_")
}
