package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile holds the public hero/about content. The site serves the most
// recently updated row.
type Profile struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string                      `gorm:"not null" json:"name"`
	Headline     string                      `json:"headline"`
	Bio          string                      `gorm:"type:text" json:"bio"`
	Roles        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"roles"`
	Location     string                      `json:"location"`
	Email        string                      `json:"email"`
	Phone        string                      `json:"phone"`
	Availability string                      `json:"availability"`
	HeroImage    datatypes.JSONType[Media]   `gorm:"type:jsonb" json:"heroImage"`
	ResumeIntro  string                      `gorm:"type:text" json:"resumeIntro"`
	CTALabel     string                      `gorm:"default:'Download Resume'" json:"ctaLabel"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}
