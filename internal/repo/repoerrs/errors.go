package repoerrs

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrInvalidData marks rows postgres refused because of their contents.
	ErrInvalidData = errors.New("invalid data")
)
