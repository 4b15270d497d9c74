package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/portfolio-studio/backend/internal/models"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository interface {
	BaseRepository[models.User]
	GetByEmail(ctx context.Context, email string, dest *models.User) error
	GetByRefreshToken(ctx context.Context, token string, dest *models.User) error
	SetRefreshToken(ctx context.Context, userID uuid.UUID, token string) error
	CountAdmins(ctx context.Context) (int64, error)
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "user not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get user by email failed")
	}
	return nil
}

// GetByRefreshToken finds the user whose stored refresh token equals the
// presented one. This equality lookup is the revocation check: a rotated or
// cleared token no longer matches any row.
func (r *userRepository) GetByRefreshToken(ctx context.Context, token string, dest *models.User) error {
	if token == "" {
		return appErr.New(appErr.CodeNotFound, "user not found")
	}
	if err := r.db.WithContext(ctx).Where("refresh_token = ?", token).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "user not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get user by refresh token failed")
	}
	return nil
}

// SetRefreshToken overwrites the stored refresh token. An empty token revokes
// the session.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID uuid.UUID, token string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("refresh_token", token)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "set refresh token failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "user not found")
	}
	return nil
}

func (r *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count admins failed")
	}
	return n, nil
}
