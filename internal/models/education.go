package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Education is one entry on the public education list.
type Education struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Institution  string                      `gorm:"not null" json:"institution"`
	Degree       string                      `gorm:"not null" json:"degree"`
	FieldOfStudy string                      `json:"fieldOfStudy"`
	StartDate    time.Time                   `gorm:"not null;index" json:"startDate"`
	EndDate      *time.Time                  `json:"endDate"`
	Grade        string                      `json:"grade"`
	Description  string                      `gorm:"type:text" json:"description"`
	Highlights   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"highlights"`
	Logo         datatypes.JSONType[Media]   `gorm:"type:jsonb" json:"logo"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}
