package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/migrations"
)

type fixtureNote struct {
	id       string
	title    string
	text     string
	subtitle string
	created  time.Time
	modified time.Time
	archived bool
}

// newFixtureStore creates a Bear-shaped database file and returns its path.
func newFixtureStore(t *testing.T, notes []fixtureNote, tags ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "database.sqlite")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migrations.Migrate(db))

	for _, n := range notes {
		archived := 0
		if n.archived {
			archived = 1
		}
		_, err = db.Exec(
			`INSERT INTO ZSFNOTE (ZUNIQUEIDENTIFIER, ZTITLE, ZTEXT, ZSUBTITLE, ZCREATIONDATE, ZMODIFICATIONDATE, ZARCHIVED)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.id, n.title, n.text, n.subtitle,
			toCoreDataSeconds(n.created), toCoreDataSeconds(n.modified), archived,
		)
		require.NoError(t, err)
	}
	for _, tag := range tags {
		_, err = db.Exec(`INSERT INTO ZSFNOTETAG (ZTITLE) VALUES (?)`, tag)
		require.NoError(t, err)
	}

	return path
}

func newFixtureRepo(t *testing.T, notes []fixtureNote, tags ...string) NoteRepository {
	t.Helper()
	path := newFixtureStore(t, notes, tags...)
	return NewNoteRepository(NewStorePathResolver(path), NewConnectSQLite, logger.Nop())
}

func toCoreDataSeconds(t time.Time) float64 {
	return float64(t.UnixNano())/float64(time.Second) - coreDataEpochOffset
}

func fixtureContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}
