// Package service provides business logic layer for the team module.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	playerModel "github.com/footballdb/football-db/internal/player/model"
	playerRepository "github.com/footballdb/football-db/internal/player/repository"
	teamModel "github.com/footballdb/football-db/internal/team/model"
	teamRepository "github.com/footballdb/football-db/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// ListTeams returns one zero-based page of teams with their rosters.
	ListTeams(ctx context.Context, page, pageSize int) (*teamModel.PagedTeamsResponse, error)

	// GetTeam returns a team with its roster.
	GetTeam(ctx context.Context, id uuid.UUID) (*teamModel.TeamResponse, error)

	// CreateTeam creates a team, optionally with an initial roster.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// UpdateTeam applies a merge-patch update to a team.
	UpdateTeam(ctx context.Context, id uuid.UUID, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error)

	// DeleteTeam deletes a team by id.
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type service struct {
	teams   teamRepository.Repository
	players playerRepository.Repository
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(teams teamRepository.Repository, players playerRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		teams:   teams,
		players: players,
		logger:  logger,
	}
}

// ListTeams returns one zero-based page of teams with their rosters.
// Rosters are assembled per team through the player repository.
func (s *service) ListTeams(ctx context.Context, page, pageSize int) (*teamModel.PagedTeamsResponse, error) {
	teams, total, err := s.teams.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		players, err := s.players.FindByTeamID(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		items = append(items, toTeamResponse(&teams[i], players))
	}

	var totalPages int64
	if pageSize > 0 {
		totalPages = (total + int64(pageSize) - 1) / int64(pageSize)
	}

	s.logger.Infow("teams listed", "page", page, "page_size", pageSize, "total", total)

	return &teamModel.PagedTeamsResponse{
		Items:         items,
		Page:          page,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// GetTeam returns a team with its roster.
func (s *service) GetTeam(ctx context.Context, id uuid.UUID) (*teamModel.TeamResponse, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	players, err := s.players.FindByTeamID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toTeamResponse(team, players)
	return &resp, nil
}

// CreateTeam validates the request, persists each nested player, then the
// team, and finally attaches the players to the team.
//
// Players are saved before the team exists. If the team insert fails, the
// already-saved players stay behind without a team reference; there is no
// compensating cleanup.
func (s *service) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	players := make([]playerModel.Player, 0, len(req.Players))
	for _, pr := range req.Players {
		saved, err := s.players.Save(ctx, &playerModel.Player{
			Name:     pr.Name,
			Position: pr.Position,
		})
		if err != nil {
			return nil, err
		}
		players = append(players, *saved)
	}

	team, err := s.teams.Save(ctx, &teamModel.Team{
		Name:    req.Name,
		Acronym: req.Acronym,
		Budget:  *req.Budget,
	})
	if err != nil {
		return nil, err
	}

	for i := range players {
		players[i].TeamID = &team.ID
		if _, err := s.players.Save(ctx, &players[i]); err != nil {
			return nil, err
		}
	}

	s.logger.Infow("team created", "team_id", team.ID, "players", len(players))

	resp := toTeamResponse(team, players)
	return &resp, nil
}

// UpdateTeam applies a merge-patch update: only fields present in the
// request overwrite the stored values. Present values are taken as-is,
// without re-validation.
func (s *service) UpdateTeam(ctx context.Context, id uuid.UUID, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			s.logger.Warnw("team not found", "team_id", id, "operation", "update")
		}
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Acronym != nil {
		team.Acronym = *req.Acronym
	}
	if req.Budget != nil {
		team.Budget = *req.Budget
	}

	saved, err := s.teams.Save(ctx, team)
	if err != nil {
		return nil, err
	}

	players, err := s.players.FindByTeamID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team updated", "team_id", id)

	resp := toTeamResponse(saved, players)
	return &resp, nil
}

// DeleteTeam deletes a team by id. Existence is checked first so deleting
// an unknown id reports not-found instead of silently succeeding. The
// schema cascades the delete to the team's players.
func (s *service) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if _, err := s.teams.FindByID(ctx, id); err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			s.logger.Warnw("team not found", "team_id", id, "operation", "delete")
		}
		return err
	}

	if err := s.teams.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_id", id)
	return nil
}

func toTeamResponse(team *teamModel.Team, players []playerModel.Player) teamModel.TeamResponse {
	playerResponses := make([]teamModel.PlayerResponse, 0, len(players))
	for _, p := range players {
		playerResponses = append(playerResponses, teamModel.PlayerResponse{
			ID:       p.ID,
			Name:     p.Name,
			Position: p.Position,
		})
	}

	return teamModel.TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		Acronym: team.Acronym,
		Budget:  team.Budget,
		Players: playerResponses,
	}
}
