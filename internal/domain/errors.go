package domain

import "errors"

var (
	// ErrNoFiles is returned when an upload is requested with an empty file list
	ErrNoFiles = errors.New("no files to upload")

	// ErrNoDestination is returned when no destination chat is specified
	ErrNoDestination = errors.New("no destination chat specified")

	// ErrNoMessages is returned when a send reports success but yields no messages
	ErrNoMessages = errors.New("send returned no messages")
)
