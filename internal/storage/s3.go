// Package storage relays uploaded media to S3-compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/portfolio-studio/backend/pkg/config"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

// Uploader streams one binary payload to the media store and returns a
// reference to it.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (url, key string, err error)
}

// S3Uploader writes objects under a fixed logical folder in one bucket.
type S3Uploader struct {
	client     *s3.Client
	bucket     string
	baseFolder string
	endpoint   string
}

func NewS3Uploader(ctx context.Context, cfg *config.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:     client,
		bucket:     cfg.S3Bucket,
		baseFolder: cfg.S3BaseFolder,
		endpoint:   strings.TrimRight(cfg.S3Endpoint, "/"),
	}, nil
}

func (u *S3Uploader) storageKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%v-%s", u.baseFolder, d.Year(), d.Month(), uuid.New(), sanitize(filename))
}

func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, string, error) {
	key := u.storageKey(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", appErr.Wrap(err, appErr.CodeInternal, "media upload failed")
	}

	return u.objectURL(key), key, nil
}

func (u *S3Uploader) objectURL(key string) string {
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key)
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// Disabled stands in when object storage settings are absent. Every upload
// fails with a clear error instead of the server refusing to boot.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, string, error) {
	return "", "", errors.New("object storage is not configured")
}
