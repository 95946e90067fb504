package schema

// CatalogIdentityBlockTable represents the 'catalog.identityblock' table.
//
// Each row is a named counter; reserving a block is a single row-locked
// UPDATE ... RETURNING, which serializes concurrent reservations.
type CatalogIdentityBlockTable struct {
	Table     string
	Name      string
	NextValue string
}

// CatalogIdentityBlock is the schema definition for catalog.identityblock
var CatalogIdentityBlock = CatalogIdentityBlockTable{
	Table:     "catalog.identityblock",
	Name:      "name",
	NextValue: "nextvalue",
}

// NodeSequence is the counter shared by every catalog node.
const NodeSequence = "node"

func (t CatalogIdentityBlockTable) Columns() []string { return []string{t.Name, t.NextValue} }

// Local returns the definition with a schema-less table name for SQLite.
func (t CatalogIdentityBlockTable) Local() CatalogIdentityBlockTable {
	t.Table = local(t.Table)
	return t
}
