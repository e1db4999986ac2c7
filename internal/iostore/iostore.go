// Package iostore persists named share links across runs.
package iostore

import (
	"fmt"
	"sync"

	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
)

// LinkStoreManager implements the contract.StoreManager interface.
type LinkStoreManager struct {
	sync.RWMutex
	links contract.LinkStore
}

var _ contract.StoreManager = &LinkStoreManager{} // Compile-time check

// GetLinkStore returns the link store, which may be nil before InitStores runs.
func (lsm *LinkStoreManager) GetLinkStore() contract.LinkStore {
	lsm.RLock()
	defer lsm.RUnlock()
	return lsm.links
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// driverFor maps a backend to its database/sql driver name.
func driverFor(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported link backend: %s. Must be sqlite, mysql or postgresql", backend)
	}
}
