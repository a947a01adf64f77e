// Package repository provides data access layer for the player module.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	playerModel "github.com/footballdb/football-db/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// FindByID finds a player by id.
	FindByID(ctx context.Context, id uuid.UUID) (*playerModel.Player, error)

	// FindAll returns one zero-based page of players and the total count.
	FindAll(ctx context.Context, page, pageSize int) ([]playerModel.Player, int64, error)

	// FindByTeamID returns all players of a team in persisted order.
	FindByTeamID(ctx context.Context, teamID uuid.UUID) ([]playerModel.Player, error)

	// Save inserts the player when it has no id yet, updates it otherwise.
	Save(ctx context.Context, player *playerModel.Player) (*playerModel.Player, error)

	// DeleteByID deletes a player by id.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of players.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new player repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID finds a player by id.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*playerModel.Player, error) {
	var player playerModel.Player
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&player).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	return &player, nil
}

// FindAll returns one zero-based page of players and the total count.
// Ordering is by creation time then id so repeated reads are deterministic.
func (r *repository) FindAll(ctx context.Context, page, pageSize int) ([]playerModel.Player, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&playerModel.Player{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&players).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", err)
	}

	if players == nil {
		players = []playerModel.Player{}
	}

	return players, total, nil
}

// FindByTeamID returns all players of a team in persisted order.
func (r *repository) FindByTeamID(ctx context.Context, teamID uuid.UUID) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC, id ASC").
		Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}

	if players == nil {
		players = []playerModel.Player{}
	}

	return players, nil
}

// Save inserts the player when it has no id yet, updates it otherwise.
// The returned player always has its id populated.
func (r *repository) Save(ctx context.Context, player *playerModel.Player) (*playerModel.Player, error) {
	if err := r.db.WithContext(ctx).Save(player).Error; err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}
	return player, nil
}

// DeleteByID deletes a player by id.
func (r *repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&playerModel.Player{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete player: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}

	return nil
}

// Count returns the total number of players.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&playerModel.Player{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return total, nil
}
