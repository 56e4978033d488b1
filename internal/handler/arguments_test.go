package handler

import (
	"errors"
	"testing"

	"github.com/maxim-ist/mcp-bear/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceArguments(t *testing.T) {
	desc := models.OperationDescriptor{
		Name: "create_note",
		Args: []models.ArgSpec{
			{Name: "title", Kind: models.ArgString},
			{Name: "tags", Kind: models.ArgStringList},
			{Name: "pin", Kind: models.ArgBool, Default: false},
			{Name: "mode", Kind: models.ArgEnum, Default: "append", Enum: models.AddTextModes},
		},
	}

	tests := []struct {
		name    string
		raw     map[string]any
		want    Arguments
		wantErr bool
	}{
		{
			name: "defaults fill absent arguments",
			raw:  map[string]any{},
			want: Arguments{"pin": false, "mode": "append"},
		},
		{
			name: "null is treated as absent",
			raw:  map[string]any{"title": nil, "pin": nil},
			want: Arguments{"pin": false, "mode": "append"},
		},
		{
			name: "undeclared arguments are dropped",
			raw:  map[string]any{"title": "t", "other": 1},
			want: Arguments{"title": "t", "pin": false, "mode": "append"},
		},
		{
			name: "list from comma separated string drops blanks",
			raw:  map[string]any{"tags": "a, ,b,"},
			want: Arguments{"tags": []string{"a", "b"}, "pin": false, "mode": "append"},
		},
		{
			name: "bool from string",
			raw:  map[string]any{"pin": "true", "mode": "replace"},
			want: Arguments{"pin": true, "mode": "replace"},
		},
		{name: "string with wrong type", raw: map[string]any{"title": 1.5}, wantErr: true},
		{name: "list with non-string item", raw: map[string]any{"tags": []any{"a", 2.0}}, wantErr: true},
		{name: "bool from unparseable string", raw: map[string]any{"pin": "maybe"}, wantErr: true},
		{name: "enum with wrong type", raw: map[string]any{"mode": true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceArguments(desc, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceBool(t *testing.T) {
	spec := models.ArgSpec{Name: "pin", Kind: models.ArgBool}

	for _, in := range []any{true, "true", "1", "yes", "Y", "on"} {
		got, err := coerceBool(spec, in)
		require.NoError(t, err, in)
		assert.True(t, got, in)
	}
	for _, in := range []any{false, "false", "0", "no", "off", ""} {
		got, err := coerceBool(spec, in)
		require.NoError(t, err, in)
		assert.False(t, got, in)
	}
}

func TestMissingArguments(t *testing.T) {
	desc := models.OperationDescriptor{Args: []models.ArgSpec{
		{Name: "old_tag", Required: true},
		{Name: "new_tag", Required: true},
		{Name: "note", Required: false},
	}}

	assert.Equal(t, []string{"old_tag", "new_tag"}, missingArguments(desc, nil))
	assert.Equal(t, []string{"new_tag"}, missingArguments(desc, map[string]any{"old_tag": "", "new_tag": nil}))
	assert.Empty(t, missingArguments(desc, map[string]any{"old_tag": "a", "new_tag": "b"}))
}

func TestArguments_Accessors(t *testing.T) {
	args := Arguments{"s": "x", "l": []string{"a"}, "b": true}

	assert.Equal(t, "x", args.String("s"))
	assert.Equal(t, "", args.String("missing"))
	assert.Equal(t, []string{"a"}, args.Strings("l"))
	assert.Nil(t, args.Strings("s"))
	assert.True(t, args.Bool("b"))
	assert.False(t, args.Bool("s"))
	assert.Equal(t, []string{"b", "l", "s"}, args.Names())
}
