package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Team represents a football club entity in the system.
// Matches the teams table schema. The roster is not mapped here: players
// are loaded explicitly through the player repository, never through an
// implicit association fetch.
type Team struct {
	ID        uuid.UUID       `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Name      string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Acronym   string          `gorm:"column:acronym;type:varchar(16);not null" json:"acronym"`
	Budget    decimal.Decimal `gorm:"column:budget;type:numeric(19,2);not null" json:"budget"`
	CreatedAt time.Time       `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time       `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns a generated identifier if none is set.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
