package repository

import (
	"context"

	"github.com/portfolio-studio/backend/internal/models"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
	"gorm.io/gorm"
)

type MessageRepository interface {
	BaseRepository[models.Message]
	ListAll(ctx context.Context) ([]models.Message, error)
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type messageRepository struct {
	BaseRepository[models.Message]
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{BaseRepository: NewBaseRepository[models.Message](db), db: db}
}

func (r *messageRepository) ListAll(ctx context.Context) ([]models.Message, error) {
	var out []models.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list messages failed")
	}
	return out, nil
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Message{}).Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count messages failed")
	}
	return n, nil
}

func (r *messageRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Message{}).Where("is_read = false").Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count unread messages failed")
	}
	return n, nil
}
