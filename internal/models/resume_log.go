package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeLog is one append-only audit row per resume download.
type ResumeLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"timestamp"`
}
