// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "github.com/footballdb/football-db/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// FindByID finds a team by id.
	FindByID(ctx context.Context, id uuid.UUID) (*teamModel.Team, error)

	// FindAll returns one zero-based page of teams and the total count.
	FindAll(ctx context.Context, page, pageSize int) ([]teamModel.Team, int64, error)

	// Save inserts the team when it has no id yet, updates it otherwise.
	Save(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// DeleteByID deletes a team by id.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of teams.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID finds a team by id.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return &team, nil
}

// FindAll returns one zero-based page of teams and the total count.
// Ordering is by creation time then id so repeated reads are deterministic.
func (r *repository) FindAll(ctx context.Context, page, pageSize int) ([]teamModel.Team, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&teamModel.Team{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count teams: %w", err)
	}

	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&teams).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}

	return teams, total, nil
}

// Save inserts the team when it has no id yet, updates it otherwise.
// The returned team always has its id populated.
func (r *repository) Save(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	if err := r.db.WithContext(ctx).Save(team).Error; err != nil {
		return nil, fmt.Errorf("failed to save team: %w", err)
	}
	return team, nil
}

// DeleteByID deletes a team by id.
func (r *repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&teamModel.Team{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}

	return nil
}

// Count returns the total number of teams.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&teamModel.Team{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return total, nil
}
