// Package services holds flows that span the store and other resources.
package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

// ResumeService owns the resume file lifecycle: disk persistence, the
// single-active-record transition, download auditing, and deletion. Uploads
// are serialized so concurrent admin uploads cannot race the
// deactivate-then-insert pair.
type ResumeService struct {
	repo repository.ResumeRepository
	dir  string
	log  *zap.Logger

	uploadMu sync.Mutex
}

func NewResumeService(repo repository.ResumeRepository, dir string, log *zap.Logger) *ResumeService {
	return &ResumeService{repo: repo, dir: dir, log: log}
}

// Download bundles the active record with an open handle on its file.
type Download struct {
	Resume models.Resume
	File   *os.File
}

// Upload writes the payload to disk under a timestamp-prefixed unique name,
// deactivates every previously active record, and inserts the new active one.
func (s *ResumeService) Upload(ctx context.Context, fileName, mimeType string, size int64, src io.Reader, uploadedBy uuid.UUID) (*models.Resume, error) {
	s.uploadMu.Lock()
	defer s.uploadMu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "create resume dir failed")
	}

	safeName := strings.Join(strings.Fields(fileName), "_")
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), safeName)

	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "write resume file failed")
	}
	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "write resume file failed")
	}
	if size == 0 {
		size = written
	}

	rec := &models.Resume{
		FileName:    fileName,
		StoragePath: storedName,
		Bytes:       size,
		Format:      strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), "."),
		MimeType:    mimeType,
		UploadedBy:  uploadedBy,
	}
	if err := s.repo.ActivateExclusive(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("resume uploaded",
		zap.String("file", fileName),
		zap.String("stored_as", storedName),
		zap.Int64("bytes", rec.Bytes),
	)
	return rec, nil
}

// Download locates the active record, appends an audit row, increments the
// counter, and opens the file. A record pointing at a missing file surfaces
// as not_found.
func (s *ResumeService) Download(ctx context.Context, userID uuid.UUID, ip, userAgent string) (*Download, error) {
	var rec models.Resume
	if err := s.repo.Active(ctx, &rec); err != nil {
		return nil, err
	}

	if err := s.repo.AppendLog(ctx, &models.ResumeLog{UserID: userID, IP: ip, UserAgent: userAgent}); err != nil {
		return nil, err
	}
	if err := s.repo.IncrementDownloads(ctx, rec.ID); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, rec.StoragePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, appErr.New(appErr.CodeNotFound, "resume file missing")
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "open resume file failed")
	}
	return &Download{Resume: rec, File: f}, nil
}

// Delete removes the on-disk file, tolerating its absence, then removes the
// record.
func (s *ResumeService) Delete(ctx context.Context, id uuid.UUID) error {
	var rec models.Resume
	if err := s.repo.GetByID(ctx, id, &rec); err != nil {
		return err
	}

	if rec.StoragePath != "" {
		if err := os.Remove(filepath.Join(s.dir, rec.StoragePath)); err != nil && !os.IsNotExist(err) {
			return appErr.Wrap(err, appErr.CodeInternal, "remove resume file failed")
		}
	}

	return s.repo.Delete(ctx, id)
}

// ActiveMeta returns the metadata of the active resume.
func (s *ResumeService) ActiveMeta(ctx context.Context) (*models.Resume, error) {
	var rec models.Resume
	if err := s.repo.Active(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
