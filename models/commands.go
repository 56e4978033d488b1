package models

// Add-text modes accepted by Bear's add-text action.
const (
	AddTextModeAppend  = "append"
	AddTextModePrepend = "prepend"
	AddTextModeReplace = "replace"
)

// AddTextModes lists the allowed add-text modes in display order.
var AddTextModes = []string{AddTextModeAppend, AddTextModePrepend, AddTextModeReplace}

// CreateNoteRequest holds the arguments of the create command.
// Every field is optional; Bear creates an empty note when none is given.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Tags     []string `json:"tags"`
	Pin      bool     `json:"pin"`
	OpenNote bool     `json:"open_note"`
}

// AddTextRequest holds the arguments of the add-text command. Mode has no
// implicit default here; an empty Mode is rejected.
type AddTextRequest struct {
	NoteID   string `json:"note_id" validate:"required"`
	Text     string `json:"text"`
	Mode     string `json:"mode" validate:"oneof=append prepend replace"`
	OpenNote bool   `json:"open_note"`
}


// AddTagsRequest holds the arguments of the add-tags command.
type AddTagsRequest struct {
	NoteID string   `json:"note_id" validate:"required"`
	Tags   []string `json:"tags" validate:"required,min=1,dive,required"`
}

// NoteRequest targets a single note by identifier (trash, open, archive,
// unarchive).
type NoteRequest struct {
	NoteID string `json:"note_id" validate:"required"`
}

// SearchRequest holds the term shown in Bear's search view.
type SearchRequest struct {
	Term string `json:"term"`
}

// TagRequest targets a single tag (open-tag).
type TagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

// RenameTagRequest holds the arguments of the rename-tag command.
type RenameTagRequest struct {
	OldTag string `json:"old_tag" validate:"required"`
	NewTag string `json:"new_tag" validate:"required"`
}
