package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Skill is a single entry on the public skills grid.
type Skill struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string                    `gorm:"not null" json:"name"`
	Category    string                    `gorm:"not null;index" json:"category"`
	Level       int                       `gorm:"not null;default:80" json:"level"`
	Icon        datatypes.JSONType[Media] `gorm:"type:jsonb" json:"icon"`
	Description string                    `gorm:"type:text" json:"description"`
	IsFeatured  bool                      `gorm:"not null;default:false" json:"isFeatured"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}
