package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListNotesQuery(t *testing.T) {
	tests := []struct {
		name     string
		archived bool
		wantArg  int
	}{
		{name: "live notes", archived: false, wantArg: 0},
		{name: "archived notes", archived: true, wantArg: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListNotesQuery(tt.archived)
			require.NoError(t, err)

			assert.Equal(t,
				"SELECT ZUNIQUEIDENTIFIER, ZTITLE, ZTEXT, ZSUBTITLE, ZCREATIONDATE FROM ZSFNOTE WHERE ZARCHIVED = ?",
				query)
			assert.Equal(t, []any{tt.wantArg}, args)
		})
	}
}

func Test_buildFindNotesContainingQuery_BindsPattern(t *testing.T) {
	query, args, err := buildFindNotesContainingQuery("it's 100%")
	require.NoError(t, err)

	assert.NotContains(t, query, "it's", "caller text must never be interpolated")
	assert.Contains(t, query, `(ZTEXT LIKE ? ESCAPE '\' OR ZTITLE LIKE ? ESCAPE '\')`)
	assert.Equal(t, []any{0, `%it's 100\%%`, `%it's 100\%%`}, args)
}

func Test_buildFindNotesContainingQuery_EscapesMetacharacters(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "a_c", want: `%a\_c%`},
		{text: "50%", want: `%50\%%`},
		{text: `C:\temp`, want: `%C:\\temp%`},
		{text: "plain", want: "%plain%"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, args, err := buildFindNotesContainingQuery(tt.text)
			require.NoError(t, err)
			assert.Equal(t, []any{0, tt.want, tt.want}, args)
		})
	}
}

func Test_buildGetNoteQuery_SelectsDetailColumns(t *testing.T) {
	query, args, err := buildGetNoteQuery("ABC-1")
	require.NoError(t, err)

	for _, col := range noteDetailColumns {
		assert.Contains(t, query, col)
	}
	assert.True(t, strings.HasSuffix(query, "WHERE ZUNIQUEIDENTIFIER = ? LIMIT 1"), query)
	assert.Equal(t, []any{"ABC-1"}, args)
}

func Test_buildListTagsQuery(t *testing.T) {
	query, args, err := buildListTagsQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT DISTINCT ZTITLE FROM ZSFNOTETAG WHERE ZTITLE IS NOT NULL", query)
	assert.Empty(t, args)
}

func Test_buildFindNotesByTagQuery_UsesInlineMarker(t *testing.T) {
	query, args, err := buildFindNotesByTagQuery("work")
	require.NoError(t, err)

	assert.Contains(t, query, "ZTEXT LIKE ?")
	assert.Equal(t, []any{0, "%#work%"}, args)
}
