package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNameIsNotSpecified    = errors.New("app name is not specified")

	ErrEmptyTag = errors.New("tag must not be empty")
)
