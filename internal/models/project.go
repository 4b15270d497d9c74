package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is a portfolio entry. Slug is derived from Title and must stay
// unique across all projects.
type Project struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string                      `gorm:"not null" json:"title" validate:"required"`
	Slug        string                      `gorm:"uniqueIndex;not null" json:"slug"`
	Description string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	Features    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`
	Tech        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tech"`
	Images      datatypes.JSONSlice[Media]  `gorm:"type:jsonb" json:"images"`
	DemoURL     string                      `json:"demoUrl"`
	RepoURL     string                      `json:"repoUrl"`
	IsPublic    bool                        `gorm:"not null;default:true" json:"isPublic"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
