package types

import "github.com/portfolio-studio/backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileRequest struct {
	Name         string       `json:"name" validate:"required"`
	Headline     string       `json:"headline"`
	Bio          string       `json:"bio"`
	Roles        []string     `json:"roles"`
	Location     string       `json:"location"`
	Email        string       `json:"email" validate:"omitempty,email"`
	Phone        string       `json:"phone"`
	Availability string       `json:"availability"`
	HeroImage    models.Media `json:"heroImage"`
	ResumeIntro  string       `json:"resumeIntro"`
	CTALabel     string       `json:"ctaLabel"`
}

type SkillRequest struct {
	Name        string       `json:"name" validate:"required"`
	Category    string       `json:"category" validate:"required"`
	Level       int          `json:"level" validate:"gte=0,lte=100"`
	Icon        models.Media `json:"icon"`
	Description string       `json:"description"`
	IsFeatured  bool         `json:"isFeatured"`
}

type ExperienceRequest struct {
	Company          string       `json:"company" validate:"required"`
	Role             string       `json:"role" validate:"required"`
	Location         string       `json:"location"`
	StartDate        string       `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string       `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	DurationLabel    string       `json:"durationLabel"`
	IsCurrent        bool         `json:"isCurrent"`
	Responsibilities []string     `json:"responsibilities"`
	Technologies     []string     `json:"technologies"`
	Highlights       []string     `json:"highlights"`
	Logo             models.Media `json:"logo"`
}

type EducationRequest struct {
	Institution  string       `json:"institution" validate:"required"`
	Degree       string       `json:"degree" validate:"required"`
	FieldOfStudy string       `json:"fieldOfStudy"`
	StartDate    string       `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string       `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Grade        string       `json:"grade"`
	Description  string       `json:"description"`
	Highlights   []string     `json:"highlights"`
	Logo         models.Media `json:"logo"`
}

type ProjectRequest struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Features    []string       `json:"features"`
	Tech        []string       `json:"tech"`
	Images      []models.Media `json:"images"`
	DemoURL     string         `json:"demoUrl" validate:"omitempty,url"`
	RepoURL     string         `json:"repoUrl" validate:"omitempty,url"`
	IsPublic    *bool          `json:"isPublic"`
}

type SocialLinkRequest struct {
	Platform  string `json:"platform" validate:"required"`
	URL       string `json:"url" validate:"required,url"`
	Icon      string `json:"icon"`
	IsPrimary bool   `json:"isPrimary"`
	SortOrder int    `json:"order"`
}

// MessageRequest is the contact-form payload. Name and email may come from
// the authenticated principal instead of the body.
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

type ReplyRequest struct {
	Response string `json:"response" validate:"required"`
}
