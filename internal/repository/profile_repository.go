package repository

import (
	"context"
	"errors"

	"github.com/portfolio-studio/backend/internal/models"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	// Latest returns the most recently updated profile row.
	Latest(ctx context.Context, dest *models.Profile) error
	// Upsert updates the existing profile or inserts the first one.
	Upsert(ctx context.Context, p *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Latest(ctx context.Context, dest *models.Profile) error {
	if err := r.db.WithContext(ctx).Order("updated_at DESC").First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "profile not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get profile failed")
	}
	return nil
}

func (r *profileRepository) Upsert(ctx context.Context, p *models.Profile) error {
	var existing models.Profile
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "create profile failed")
		}
		return nil
	case err != nil:
		return appErr.Wrap(err, appErr.CodeInternal, "get profile failed")
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update profile failed")
	}
	return nil
}
