// Package model provides domain models and DTOs for the team module.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	playerModel "github.com/footballdb/football-db/internal/player/model"
)

// CreatePlayerRequest represents one player nested in a team creation request.
type CreatePlayerRequest struct {
	Name     string                `json:"name"`
	Position *playerModel.Position `json:"position,omitempty"`
}

// CreateTeamRequest represents the request to create a team,
// optionally with an initial roster.
type CreateTeamRequest struct {
	Name    string                `json:"name"`
	Acronym string                `json:"acronym"`
	Budget  *decimal.Decimal      `json:"budget"`
	Players []CreatePlayerRequest `json:"players,omitempty"`
}

// UpdateTeamRequest represents a merge-patch update of a team.
// Fields left null are not modified; present fields replace the stored
// value as-is, without re-validation.
type UpdateTeamRequest struct {
	Name    *string          `json:"name,omitempty"`
	Acronym *string          `json:"acronym,omitempty"`
	Budget  *decimal.Decimal `json:"budget,omitempty"`
}

// PlayerResponse represents a player in API responses.
type PlayerResponse struct {
	ID       uuid.UUID             `json:"id"`
	Name     string                `json:"name"`
	Position *playerModel.Position `json:"position,omitempty"`
}

// TeamResponse represents a fully populated team in API responses.
type TeamResponse struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Acronym string           `json:"acronym"`
	Budget  decimal.Decimal  `json:"budget"`
	Players []PlayerResponse `json:"players"`
}

// PagedTeamsResponse represents one page of teams with navigation totals.
type PagedTeamsResponse struct {
	Items         []TeamResponse `json:"items"`
	Page          int            `json:"page"`
	PageSize      int            `json:"page_size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int64          `json:"total_pages"`
}
