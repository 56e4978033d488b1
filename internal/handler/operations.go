package handler

import (
	"context"
	"fmt"

	"github.com/maxim-ist/mcp-bear/internal/service"
	"github.com/maxim-ist/mcp-bear/models"
)

// executor runs one operation with already validated and coerced arguments.
type executor func(ctx context.Context, args Arguments) (any, error)

type operation struct {
	desc models.OperationDescriptor
	run  executor
}

// Registry is the fixed catalog of operations and their executors.
type Registry struct {
	ops   map[string]operation
	order []string
}

// NewRegistry binds every operation to the reader or the command service.
func NewRegistry(notes service.NoteService, commands service.CommandService) *Registry {
	r := &Registry{ops: make(map[string]operation)}

	// ── reader operations ──

	r.add(models.OperationDescriptor{
		Name:        "get_notes",
		Description: "Get all non-archived notes from Bear",
		Executor:    models.ExecutorReader,
		ReadOnly:    true,
	}, func(ctx context.Context, _ Arguments) (any, error) {
		notes, err := notes.ListNotes(ctx)
		if err != nil {
			return nil, err
		}
		return models.NewNotesResult(notes), nil
	})

	r.add(models.OperationDescriptor{
		Name:        "get_tags",
		Description: "Get all tags from Bear",
		Executor:    models.ExecutorReader,
		ReadOnly:    true,
	}, func(ctx context.Context, _ Arguments) (any, error) {
		tags, err := notes.ListTags(ctx)
		if err != nil {
			return nil, err
		}
		return models.NewTagsResult(tags), nil
	})

	r.add(models.OperationDescriptor{
		Name:        "get_notes_like",
		Description: "Get notes whose text contains the given string",
		Args: []models.ArgSpec{
			{Name: "like", Description: "Text to search for in note bodies", Kind: models.ArgString, Required: true},
		},
		Executor: models.ExecutorReader,
		ReadOnly: true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		notes, err := notes.SearchNotes(ctx, args.String("like"))
		if err != nil {
			return nil, err
		}
		return models.NewNotesResult(notes), nil
	})

	r.add(models.OperationDescriptor{
		Name:        "get_note_by_id",
		Description: "Get a specific note by its unique identifier",
		Args: []models.ArgSpec{
			{Name: "note_id", Description: "Unique identifier of the note", Kind: models.ArgString, Required: true},
		},
		Executor: models.ExecutorReader,
		ReadOnly: true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		note, err := notes.GetNote(ctx, args.String("note_id"))
		if err != nil {
			return nil, err
		}
		if note == nil {
			return nil, ErrNoteNotFound
		}
		return models.NoteResult{Note: *note}, nil
	})

	r.add(models.OperationDescriptor{
		Name:        "get_notes_by_tag",
		Description: "Get all non-archived notes carrying a specific tag",
		Args: []models.ArgSpec{
			{Name: "tag", Description: "Tag to filter by, with or without the leading #", Kind: models.ArgString, Required: true},
		},
		Executor: models.ExecutorReader,
		ReadOnly: true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		notes, err := notes.NotesByTag(ctx, args.String("tag"))
		if err != nil {
			return nil, err
		}
		return models.NewNotesResult(notes), nil
	})

	r.add(models.OperationDescriptor{
		Name:        "get_archived_notes",
		Description: "Get all archived notes from Bear",
		Executor:    models.ExecutorReader,
		ReadOnly:    true,
	}, func(ctx context.Context, _ Arguments) (any, error) {
		notes, err := notes.ListArchivedNotes(ctx)
		if err != nil {
			return nil, err
		}
		return models.NewNotesResult(notes), nil
	})

	// ── command operations ──

	noteID := models.ArgSpec{Name: "note_id", Description: "Unique identifier of the note", Kind: models.ArgString, Required: true}
	openNote := models.ArgSpec{Name: "open_note", Description: "Open the note in Bear afterwards", Kind: models.ArgBool, Default: false}

	r.add(models.OperationDescriptor{
		Name:        "create_note",
		Description: "Create a new note in Bear",
		Args: []models.ArgSpec{
			{Name: "title", Description: "Note title", Kind: models.ArgString},
			{Name: "text", Description: "Note body", Kind: models.ArgString},
			{Name: "tags", Description: "Tags to add to the note", Kind: models.ArgStringList},
			{Name: "pin", Description: "Pin the note to the top of the list", Kind: models.ArgBool, Default: false},
			openNote,
		},
		Executor: models.ExecutorBuilder,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.CreateNote(ctx, models.CreateNoteRequest{
			Title:    args.String("title"),
			Text:     args.String("text"),
			Tags:     args.Strings("tags"),
			Pin:      args.Bool("pin"),
			OpenNote: args.Bool("open_note"),
		})
	})

	r.add(models.OperationDescriptor{
		Name:        "add_text",
		Description: "Add text to an existing note",
		Args: []models.ArgSpec{
			noteID,
			{Name: "text", Description: "Text to add", Kind: models.ArgString, Required: true},
			{
				Name:        "mode",
				Description: "Where to put the text",
				Kind:        models.ArgEnum,
				Default:     models.AddTextModeAppend,
				Enum:        models.AddTextModes,
			},
			openNote,
		},
		Executor:    models.ExecutorBuilder,
		Destructive: true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.AddText(ctx, models.AddTextRequest{
			NoteID:   args.String("note_id"),
			Text:     args.String("text"),
			Mode:     args.String("mode"),
			OpenNote: args.Bool("open_note"),
		})
	})

	r.add(models.OperationDescriptor{
		Name:        "add_tags",
		Description: "Add tags to an existing note",
		Args: []models.ArgSpec{
			noteID,
			{Name: "tags", Description: "Tags to add", Kind: models.ArgStringList, Required: true},
		},
		Executor: models.ExecutorBuilder,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.AddTags(ctx, models.AddTagsRequest{
			NoteID: args.String("note_id"),
			Tags:   args.Strings("tags"),
		})
	})

	r.add(models.OperationDescriptor{
		Name:        "trash_note",
		Description: "Move a note to the trash",
		Args:        []models.ArgSpec{noteID},
		Executor:    models.ExecutorBuilder,
		Destructive: true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.TrashNote(ctx, models.NoteRequest{NoteID: args.String("note_id")})
	})

	r.add(models.OperationDescriptor{
		Name:        "open_note",
		Description: "Open a note in Bear",
		Args:        []models.ArgSpec{noteID},
		Executor:    models.ExecutorBuilder,
		ReadOnly:    true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.OpenNote(ctx, models.NoteRequest{NoteID: args.String("note_id")})
	})

	r.add(models.OperationDescriptor{
		Name:        "search_bear",
		Description: "Open Bear's search view with the given term",
		Args: []models.ArgSpec{
			{Name: "term", Description: "Search term", Kind: models.ArgString, Required: true},
		},
		Executor: models.ExecutorBuilder,
		ReadOnly: true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.Search(ctx, models.SearchRequest{Term: args.String("term")})
	})

	r.add(models.OperationDescriptor{
		Name:        "archive_note",
		Description: "Archive a note",
		Args:        []models.ArgSpec{noteID},
		Executor:    models.ExecutorBuilder,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.ArchiveNote(ctx, models.NoteRequest{NoteID: args.String("note_id")})
	})

	r.add(models.OperationDescriptor{
		Name:        "unarchive_note",
		Description: "Move an archived note back to the notes list",
		Args:        []models.ArgSpec{noteID},
		Executor:    models.ExecutorBuilder,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.UnarchiveNote(ctx, models.NoteRequest{NoteID: args.String("note_id")})
	})

	r.add(models.OperationDescriptor{
		Name:        "open_tag",
		Description: "Show all notes with a tag in Bear",
		Args: []models.ArgSpec{
			{Name: "tag", Description: "Tag to open", Kind: models.ArgString, Required: true},
		},
		Executor: models.ExecutorBuilder,
		ReadOnly: true,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.OpenTag(ctx, models.TagRequest{Tag: args.String("tag")})
	})

	r.add(models.OperationDescriptor{
		Name:        "rename_tag",
		Description: "Rename an existing tag",
		Args: []models.ArgSpec{
			{Name: "old_tag", Description: "Current tag name", Kind: models.ArgString, Required: true},
			{Name: "new_tag", Description: "New tag name", Kind: models.ArgString, Required: true},
		},
		Executor: models.ExecutorBuilder,
	}, func(ctx context.Context, args Arguments) (any, error) {
		return commands.RenameTag(ctx, models.RenameTagRequest{
			OldTag: args.String("old_tag"),
			NewTag: args.String("new_tag"),
		})
	})

	return r
}

func (r *Registry) add(desc models.OperationDescriptor, run executor) {
	if _, dup := r.ops[desc.Name]; dup {
		panic(fmt.Sprintf("operation %q registered twice", desc.Name))
	}
	r.ops[desc.Name] = operation{desc: desc, run: run}
	r.order = append(r.order, desc.Name)
}

func (r *Registry) lookup(name string) (operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Descriptors returns the catalog in registration order.
func (r *Registry) Descriptors() []models.OperationDescriptor {
	out := make([]models.OperationDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name].desc)
	}
	return out
}
