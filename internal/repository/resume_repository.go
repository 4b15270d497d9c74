package repository

import (
	"context"
	"errors"

	"github.com/portfolio-studio/backend/internal/models"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	BaseRepository[models.Resume]
	Active(ctx context.Context, dest *models.Resume) error
	// ActivateExclusive deactivates every resume row and inserts rec as the
	// active one, inside a single transaction.
	ActivateExclusive(ctx context.Context, rec *models.Resume) error
	IncrementDownloads(ctx context.Context, id any) error
	AppendLog(ctx context.Context, entry *models.ResumeLog) error
	ActiveDownloadCount(ctx context.Context) (int64, error)
}

type resumeRepository struct {
	BaseRepository[models.Resume]
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{BaseRepository: NewBaseRepository[models.Resume](db), db: db}
}

func (r *resumeRepository) Active(ctx context.Context, dest *models.Resume) error {
	if err := r.db.WithContext(ctx).Where("is_active = true").Order("created_at DESC").First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "no active resume")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get active resume failed")
	}
	return nil
}

func (r *resumeRepository) ActivateExclusive(ctx context.Context, rec *models.Resume) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Resume{}).Where("is_active = true").Update("is_active", false).Error; err != nil {
			return err
		}
		rec.IsActive = true
		return tx.Create(rec).Error
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "activate resume failed")
	}
	return nil
}

func (r *resumeRepository) IncrementDownloads(ctx context.Context, id any) error {
	res := r.db.WithContext(ctx).Model(&models.Resume{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1"))
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "increment downloads failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "resume not found")
	}
	return nil
}

func (r *resumeRepository) AppendLog(ctx context.Context, entry *models.ResumeLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "append resume log failed")
	}
	return nil
}

// ActiveDownloadCount returns the download counter of the active resume, or 0
// when none exists.
func (r *resumeRepository) ActiveDownloadCount(ctx context.Context) (int64, error) {
	var rec models.Resume
	if err := r.Active(ctx, &rec); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rec.DownloadCount, nil
}
