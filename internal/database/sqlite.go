package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectSQLite opens the SQLite database at the given path with WAL
// journaling and the configured busy timeout. The returned handle is the
// single shared connection for the whole process.
func ConnectSQLite(dsn string, busyTimeout time.Duration) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite dsn must not be empty")
	}

	if !strings.Contains(dsn, "?") {
		dsn = fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d", dsn, busyTimeout.Milliseconds())
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	return db, nil
}
