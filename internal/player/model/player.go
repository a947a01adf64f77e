// Package model provides domain models for the player module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player represents a roster member.
// Matches the players table schema. The team association is nullable:
// players created during team creation get their team_id assigned once
// the team row exists.
type Player struct {
	ID        uuid.UUID  `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Name      string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Position  *Position  `gorm:"column:position;type:varchar(32)" json:"position,omitempty"`
	TeamID    *uuid.UUID `gorm:"column:team_id;type:uuid" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeCreate assigns a generated identifier if none is set.
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Player) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
