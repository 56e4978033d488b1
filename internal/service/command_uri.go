package service

import (
	"net/url"
	"strings"
)

// callbackHost is the fixed host of Bear's x-callback-url API.
const callbackHost = "x-callback-url"

// Bear x-callback-url actions.
const (
	actionCreate    = "create"
	actionAddText   = "add-text"
	actionAddTags   = "add-tags"
	actionTrash     = "trash"
	actionOpenNote  = "open-note"
	actionSearch    = "search"
	actionArchive   = "archive"
	actionUnarchive = "unarchive"
	actionOpenTag   = "open-tag"
	actionRenameTag = "rename-tag"
)

// Query parameter names understood by Bear.
const (
	paramID       = "id"
	paramTitle    = "title"
	paramText     = "text"
	paramTags     = "tags"
	paramPin      = "pin"
	paramOpenNote = "open_note"
	paramMode     = "mode"
	paramTerm     = "term"
	paramName     = "name"
	paramNewName  = "new_name"
)

const (
	flagYes       = "yes"
	listSeparator = ","
)

// commandParams collects the query of one command URI.
type commandParams struct {
	url.Values
}

func newCommandParams() commandParams {
	return commandParams{Values: url.Values{}}
}

// set adds key unconditionally, even with an empty value.
func (p commandParams) set(key, value string) commandParams {
	p.Set(key, value)
	return p
}

// optional adds key only for a non-empty value.
func (p commandParams) optional(key, value string) commandParams {
	if value != "" {
		p.Set(key, value)
	}
	return p
}

// list adds the comma-joined values under one key, skipping empty lists.
func (p commandParams) list(key string, values []string) commandParams {
	if len(values) > 0 {
		p.Set(key, strings.Join(values, listSeparator))
	}
	return p
}

// flag adds key=yes when on is true. Bear treats absence as "no".
func (p commandParams) flag(key string, on bool) commandParams {
	if on {
		p.Set(key, flagYes)
	}
	return p
}

// buildCommandURI renders "<scheme>://x-callback-url/<action>?<query>".
// Spaces are encoded as %20: Bear does not decode "+" in query values.
func buildCommandURI(scheme, action string, params commandParams) string {
	uri := scheme + "://" + callbackHost + "/" + action

	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	if query != "" {
		uri += "?" + query
	}
	return uri
}
