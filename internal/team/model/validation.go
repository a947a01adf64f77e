package model

import (
	"fmt"
	"strings"
)

// FieldError names one request field violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field violation of a request.
// It is returned as a single error so callers can report all of them at once.
type ValidationErrors []FieldError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the creation request field rules and returns every
// violation found, or nil when the request is valid.
func (r *CreateTeamRequest) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required and cannot be blank"})
	}
	if strings.TrimSpace(r.Acronym) == "" {
		errs = append(errs, FieldError{Field: "acronym", Message: "acronym is required and cannot be blank"})
	}
	if r.Budget == nil {
		errs = append(errs, FieldError{Field: "budget", Message: "budget is required"})
	} else if !r.Budget.IsPositive() {
		errs = append(errs, FieldError{Field: "budget", Message: "budget must be positive"})
	}

	for i, player := range r.Players {
		errs = append(errs, player.validate(fmt.Sprintf("players[%d]", i))...)
	}

	return errs
}

// validate checks one nested player request, prefixing field names with
// its position in the list.
func (r *CreatePlayerRequest) validate(prefix string) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: prefix + ".name", Message: "player name is required and cannot be blank"})
	}
	if r.Position != nil && !r.Position.Valid() {
		errs = append(errs, FieldError{Field: prefix + ".position", Message: "position must be one of DEFENDER, ATTACKER, MIDFIELDER, GOALKEEPER"})
	}

	return errs
}
