package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/unigrade/unigrade-api/internal/config"
)

// Connect opens the backend selected by configuration. Each driver binds
// parameters natively; no SQL text is rewritten between backends.
func Connect(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		return ConnectSQLite(cfg.DatabaseDSN, cfg.BusyTimeout)
	case config.DriverMySQL:
		return ConnectMySQL(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
