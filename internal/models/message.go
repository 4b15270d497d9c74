package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageReply is one admin response appended to a contact message.
type MessageReply struct {
	Body   string    `json:"body"`
	SentAt time.Time `json:"sentAt"`
	SentBy uuid.UUID `json:"sentBy"`
}

// Message is a contact-form submission. SenderID is nil for anonymous
// visitors.
type Message struct {
	ID        uuid.UUID                         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SenderID  *uuid.UUID                        `gorm:"type:uuid;index" json:"sender,omitempty"`
	Name      string                            `gorm:"not null" json:"name"`
	Email     string                            `gorm:"not null" json:"email"`
	Subject   string                            `gorm:"not null" json:"subject"`
	Body      string                            `gorm:"type:text;not null" json:"body"`
	IsRead    bool                              `gorm:"not null;default:false" json:"isRead"`
	Replied   bool                              `gorm:"not null;default:false" json:"replied"`
	Replies   datatypes.JSONSlice[MessageReply] `gorm:"type:jsonb" json:"replies"`
	CreatedAt time.Time                         `json:"created_at"`
	UpdatedAt time.Time                         `json:"updated_at"`
}
