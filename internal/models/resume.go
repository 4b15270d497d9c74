package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is an uploaded CV file. At most one row is active; the download
// endpoint serves the active one.
type Resume struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FileName      string    `gorm:"not null" json:"fileName"`
	StoragePath   string    `gorm:"uniqueIndex;not null" json:"storagePath"`
	Bytes         int64     `gorm:"not null;default:0" json:"bytes"`
	Format        string    `json:"format"`
	MimeType      string    `json:"mimeType"`
	UploadedBy    uuid.UUID `gorm:"type:uuid" json:"uploadedBy"`
	DownloadCount int64     `gorm:"not null;default:0" json:"downloadCount"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
