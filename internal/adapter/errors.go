package adapter

import "errors"

var (
	ErrLaunchFailed   = errors.New("failed to open URL")
	ErrLaunchTimedOut = errors.New("launcher timed out")
)
