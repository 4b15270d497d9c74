package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Experience is one role on the public timeline.
type Experience struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Company          string                      `gorm:"not null" json:"company"`
	Role             string                      `gorm:"not null" json:"role"`
	Location         string                      `json:"location"`
	StartDate        time.Time                   `gorm:"not null;index" json:"startDate"`
	EndDate          *time.Time                  `json:"endDate"`
	DurationLabel    string                      `json:"durationLabel"`
	IsCurrent        bool                        `gorm:"not null;default:false" json:"isCurrent"`
	Responsibilities datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"responsibilities"`
	Technologies     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"technologies"`
	Highlights       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"highlights"`
	Logo             datatypes.JSONType[Media]   `gorm:"type:jsonb" json:"logo"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}
