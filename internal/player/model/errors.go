package model

import "errors"

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidPosition indicates that a position token is outside the known set.
	ErrInvalidPosition = errors.New("invalid player position")
)
