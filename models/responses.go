package models

// Response is the envelope returned for every dispatched operation.
// Exactly one of Result and Error is set.
type Response struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccessResponse wraps an operation result.
func NewSuccessResponse(result any) Response {
	return Response{Success: true, Result: result}
}

// NewFailureResponse wraps an operation failure.
func NewFailureResponse(err error) Response {
	return Response{Success: false, Error: err.Error()}
}

// NoteResult is the payload of a single-note read.
type NoteResult struct {
	Note Note `json:"note"`
}

// NotesResult is the payload of every note-list read.
type NotesResult struct {
	Notes []Note `json:"notes"`
	Count int    `json:"count"`
}

// NewNotesResult never encodes notes as null.
func NewNotesResult(notes []Note) NotesResult {
	if notes == nil {
		notes = []Note{}
	}
	return NotesResult{Notes: notes, Count: len(notes)}
}

// TagsResult is the payload of the tag listing.
type TagsResult struct {
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

// NewTagsResult never encodes tags as null.
func NewTagsResult(tags []string) TagsResult {
	if tags == nil {
		tags = []string{}
	}
	return TagsResult{Tags: tags, Count: len(tags)}
}

// DispatchResult acknowledges that a command URI was handed to the launcher.
// It does not confirm that Bear applied the command.
type DispatchResult struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
