package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/maxim-ist/mcp-bear/internal/logger"
)

// Connector opens a connection to the store located at path.
type Connector func(ctx context.Context, path string, log *logger.Logger) (*DB, error)

// NewConnectSQLite opens the Bear database at path in read-only mode and
// pings it. The file is never created.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("note store file is not accessible")
		return nil, fmt.Errorf("%w: %w", ErrOpeningStore, err)
	}

	conn, err := sql.Open("sqlite3", readOnlyDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningStore, err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrOpeningStore, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to note store")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// readOnlyDSN builds an SQLite URI filename that opens path without write
// access.
func readOnlyDSN(path string) string {
	return "file:" + uriPathEscaper.Replace(path) + "?mode=ro"
}
