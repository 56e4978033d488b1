package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/maxim-ist/mcp-bear/models"
)

const (
	notesTable = "ZSFNOTE"
	tagsTable  = "ZSFNOTETAG"

	colID       = "ZUNIQUEIDENTIFIER"
	colTitle    = "ZTITLE"
	colText     = "ZTEXT"
	colSubtitle = "ZSUBTITLE"
	colCreated  = "ZCREATIONDATE"
	colModified = "ZMODIFICATIONDATE"
	colArchived = "ZARCHIVED"
	colTagTitle = "ZTITLE"

	activeFlag   = 0
	archivedFlag = 1
	likeWildcard = "%"
	likeEscape   = `\`
)

// likeEscaper turns LIKE metacharacters in caller text into literals.
var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// noteSummaryColumns are selected by list reads.
var noteSummaryColumns = []string{colID, colTitle, colText, colSubtitle, colCreated}

// noteDetailColumns are selected by the single-note read.
var noteDetailColumns = []string{colID, colTitle, colText, colSubtitle, colCreated, colModified, colArchived}

func buildListNotesQuery(archived bool) (string, []any, error) {
	flag := activeFlag
	if archived {
		flag = archivedFlag
	}

	return sq.Select(noteSummaryColumns...).
		From(notesTable).
		Where(sq.Eq{colArchived: flag}).
		ToSql()
}

// buildFindNotesContainingQuery matches text literally anywhere in the title
// or body of non-archived notes. SQLite's LIKE folds case for ASCII letters
// only.
func buildFindNotesContainingQuery(text string) (string, []any, error) {
	pattern := contains(likeEscaper.Replace(text))

	return sq.Select(noteSummaryColumns...).
		From(notesTable).
		Where(sq.Eq{colArchived: activeFlag}).
		Where(sq.Or{
			likeEscaped(colText, pattern),
			likeEscaped(colTitle, pattern),
		}).
		ToSql()
}

func likeEscaped(column, pattern string) sq.Sqlizer {
	return sq.Expr(column+" LIKE ? ESCAPE '"+likeEscape+"'", pattern)
}

func buildGetNoteQuery(id string) (string, []any, error) {
	return sq.Select(noteDetailColumns...).
		From(notesTable).
		Where(sq.Eq{colID: id}).
		Limit(1).
		ToSql()
}

func buildListTagsQuery() (string, []any, error) {
	return sq.Select(colTagTitle).
		Distinct().
		From(tagsTable).
		Where(sq.NotEq{colTagTitle: nil}).
		ToSql()
}

// buildFindNotesByTagQuery matches the inline "#tag" marker in the body of
// non-archived notes. Any tag sharing the prefix matches as well.
func buildFindNotesByTagQuery(tag string) (string, []any, error) {
	return sq.Select(noteSummaryColumns...).
		From(notesTable).
		Where(sq.Eq{colArchived: activeFlag}).
		Where(sq.Like{colText: contains(models.TagMarker(tag))}).
		ToSql()
}

// contains wraps s in LIKE wildcards. Metacharacters already in s keep their
// meaning, so tag lookup stays a plain substring match.
func contains(s string) string {
	return likeWildcard + s + likeWildcard
}
