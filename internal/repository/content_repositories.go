package repository

import (
	"context"

	"github.com/portfolio-studio/backend/internal/models"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
	"gorm.io/gorm"
)

// The skills, experience, education and social-link resources share the base
// CRUD contract and differ only in their public list ordering.

type SkillRepository interface {
	BaseRepository[models.Skill]
	ListOrdered(ctx context.Context) ([]models.Skill, error)
}

type skillRepository struct {
	BaseRepository[models.Skill]
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{BaseRepository: NewBaseRepository[models.Skill](db), db: db}
}

func (r *skillRepository) ListOrdered(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	if err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list skills failed")
	}
	return out, nil
}

type ExperienceRepository interface {
	BaseRepository[models.Experience]
	ListOrdered(ctx context.Context) ([]models.Experience, error)
}

type experienceRepository struct {
	BaseRepository[models.Experience]
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{BaseRepository: NewBaseRepository[models.Experience](db), db: db}
}

func (r *experienceRepository) ListOrdered(ctx context.Context) ([]models.Experience, error) {
	var out []models.Experience
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list experience failed")
	}
	return out, nil
}

type EducationRepository interface {
	BaseRepository[models.Education]
	ListOrdered(ctx context.Context) ([]models.Education, error)
}

type educationRepository struct {
	BaseRepository[models.Education]
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{BaseRepository: NewBaseRepository[models.Education](db), db: db}
}

func (r *educationRepository) ListOrdered(ctx context.Context) ([]models.Education, error) {
	var out []models.Education
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list education failed")
	}
	return out, nil
}

type SocialLinkRepository interface {
	BaseRepository[models.SocialLink]
	ListOrdered(ctx context.Context) ([]models.SocialLink, error)
}

type socialLinkRepository struct {
	BaseRepository[models.SocialLink]
	db *gorm.DB
}

func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &socialLinkRepository{BaseRepository: NewBaseRepository[models.SocialLink](db), db: db}
}

func (r *socialLinkRepository) ListOrdered(ctx context.Context) ([]models.SocialLink, error) {
	var out []models.SocialLink
	if err := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list social links failed")
	}
	return out, nil
}
