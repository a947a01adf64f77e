package model

import "errors"

// ErrTeamNotFound indicates that the referenced team id does not exist.
var ErrTeamNotFound = errors.New("team not found")
