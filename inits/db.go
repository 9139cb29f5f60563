package inits

import (
	"github.com/hashicorp/go-memdb"
)

const SessionTable = "session"

func Schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			SessionTable: {
				Name: SessionTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:         "id",
						Unique:       true,
						Indexer:      &memdb.StringFieldIndex{Field: "ID"},
						AllowMissing: false,
					},
					"expiry": {
						Name:         "expiry",
						Unique:       false,
						Indexer:      &memdb.IntFieldIndex{Field: "Expiry"},
						AllowMissing: false,
					},
				},
			},
		},
	}
}

// NewDB creates the in-memory session store.
func NewDB() (*memdb.MemDB, error) {
	return memdb.NewMemDB(Schema())
}
