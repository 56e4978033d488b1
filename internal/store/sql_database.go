package store

import (
	"database/sql"

	"github.com/maxim-ist/mcp-bear/internal/logger"
)

// DB is a single connection pool to the Bear store.
//
// A DB lives for the duration of one reader call and is closed by it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Close releases the underlying pool and logs a failure instead of
// returning it: a close error cannot change the outcome of a read.
func (db *DB) Close() {
	if err := db.DB.Close(); err != nil {
		db.logger.Err(err).Str("func", "DB.Close").Msg("error closing note store connection")
	}
}
