package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLink is a footer/header link to an external profile.
type SocialLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Platform  string    `gorm:"not null" json:"platform"`
	URL       string    `gorm:"not null" json:"url"`
	Icon      string    `json:"icon"`
	IsPrimary bool      `gorm:"not null;default:false" json:"isPrimary"`
	SortOrder int       `gorm:"not null;default:0;index" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
