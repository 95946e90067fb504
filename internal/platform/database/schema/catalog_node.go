package schema

// CatalogNodeTable represents the 'catalog.node' table.
//
// It indexes every owned descendant of an aggregate so that a child uuid
// (a season, an episode, a book item) resolves to its root row.
type CatalogNodeTable struct {
	Table  string
	UUID   string
	RootID string
	Kind   string
}

// CatalogNode is the schema definition for catalog.node
var CatalogNode = CatalogNodeTable{
	Table:  "catalog.node",
	UUID:   "uuid",
	RootID: "rootid",
	Kind:   "kind",
}

func (t CatalogNodeTable) Columns() []string { return []string{t.UUID, t.RootID, t.Kind} }

// Local returns the definition with a schema-less table name for SQLite.
func (t CatalogNodeTable) Local() CatalogNodeTable {
	t.Table = local(t.Table)
	return t
}
