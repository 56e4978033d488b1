package models

import (
	"strings"
	"time"
)

// Note is a single entry of the Bear store as returned to clients.
//
// ModifiedAt and Archived are filled only by detail reads; list reads leave
// them nil so they are omitted from the encoded payload.
type Note struct {
	// ID is Bear's ZUNIQUEIDENTIFIER. It is assigned by Bear and never reused.
	ID string `json:"id"`

	Title    string `json:"title"`
	Text     string `json:"text"`
	Subtitle string `json:"subtitle"`

	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
}

// TagSigil prefixes a tag name inside note text.
const TagSigil = "#"

// TagMarker returns the literal marker Bear embeds in note text for tag.
func TagMarker(tag string) string {
	return TagSigil + tag
}

// NormalizeTag removes a leading sigil and surrounding spaces so that "#work"
// and "work" name the same tag.
func NormalizeTag(tag string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), TagSigil))
}

// NormalizeTags applies NormalizeTag to every tag and drops the empty ones.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := NormalizeTag(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}
