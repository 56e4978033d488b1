package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/models"
)

type noteRepository struct {
	paths   PathResolver
	connect Connector
	logger  *logger.Logger
}

// NewNoteRepository returns a reader that opens a fresh read-only connection
// for every call and closes it before returning.
func NewNoteRepository(paths PathResolver, connect Connector, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		paths:   paths,
		connect: connect,
		logger:  logger,
	}
}

func (r *noteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	query, args, err := buildListNotesQuery(false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	notes, err := r.queryNotes(ctx, "noteRepository.ListNotes", query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) ListArchivedNotes(ctx context.Context) ([]models.Note, error) {
	query, args, err := buildListNotesQuery(true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	notes, err := r.queryNotes(ctx, "noteRepository.ListArchivedNotes", query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) FindNotesContaining(ctx context.Context, text string) ([]models.Note, error) {
	query, args, err := buildFindNotesContainingQuery(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	notes, err := r.queryNotes(ctx, "noteRepository.FindNotesContaining", query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) FindNotesByTag(ctx context.Context, tag string) ([]models.Note, error) {
	query, args, err := buildFindNotesByTagQuery(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	notes, err := r.queryNotes(ctx, "noteRepository.FindNotesByTag", query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find notes by tag %q: %w", tag, err)
	}
	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, id string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	db, err := r.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	defer db.Close()

	var (
		note     models.Note
		title    sql.NullString
		text     sql.NullString
		subtitle sql.NullString
		created  coreDataTime
		modified coreDataTime
		archived sql.NullInt64
	)
	err = db.QueryRowContext(ctx, query, args...).Scan(
		&note.ID,
		&title,
		&text,
		&subtitle,
		&created,
		&modified,
		&archived,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "noteRepository.GetNote").Str("note_id", id).Msg("note not found")
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", id).
			Msg("failed to query note")
		return nil, fmt.Errorf("failed to get note: %w: %w", ErrScanningRow, err)
	}

	note.Title = title.String
	note.Text = text.String
	note.Subtitle = subtitle.String
	note.CreatedAt = created.Ptr()
	note.ModifiedAt = modified.Ptr()
	isArchived := archived.Valid && archived.Int64 != 0
	note.Archived = &isArchived

	return &note, nil
}

func (r *noteRepository) ListTags(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTagsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	db, err := r.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListTags").Msg("failed to query tags")
		return nil, fmt.Errorf("failed to list tags: %w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err = rows.Scan(&tag); err != nil {
			log.Err(err).Str("func", "noteRepository.ListTags").Msg("failed to scan tag row")
			return nil, fmt.Errorf("failed to list tags: %w: %w", ErrScanningRows, err)
		}
		tags = append(tags, tag)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "noteRepository.ListTags").Msg("error iterating tag rows")
		return nil, fmt.Errorf("failed to list tags: %w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// open resolves the store location and connects to it.
func (r *noteRepository) open(ctx context.Context) (*DB, error) {
	log := logger.FromContext(ctx)

	path, err := r.paths.Resolve()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.open").Msg("failed to resolve note store path")
		return nil, err
	}

	return r.connect(ctx, path, log)
}

// queryNotes runs a summary query and maps every row.
func (r *noteRepository) queryNotes(ctx context.Context, caller, query string, args ...any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	db, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute notes query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var (
			note     models.Note
			title    sql.NullString
			text     sql.NullString
			subtitle sql.NullString
			created  coreDataTime
		)
		if err = rows.Scan(&note.ID, &title, &text, &subtitle, &created); err != nil {
			log.Err(err).Str("func", caller).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		note.Title = title.String
		note.Text = text.String
		note.Subtitle = subtitle.String
		note.CreatedAt = created.Ptr()
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error iterating note rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	log.Debug().Str("func", caller).Int("count", len(notes)).Msg("notes read")
	return notes, nil
}
