package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/google/uuid"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

// MediaService stores admin uploaded images in an S3-compatible bucket
type MediaService struct {
	uploader  s3manageriface.UploaderAPI
	bucket    string
	publicURL string
	logger    logger.Logger
}

// NewMediaService returns a service whose uploads fail with ErrStorageNotConfigured when the bucket is not set up
func NewMediaService(cfg config.StorageConfig, logger logger.Logger) (*MediaService, error) {
	svc := &MediaService{
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}
	if !cfg.IsConfigured() {
		return svc, nil
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(cfg.ForcePathStyle),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	svc.uploader = s3manager.NewUploader(sess)
	return svc, nil
}

// NewMediaServiceWithUploader is used by tests
func NewMediaServiceWithUploader(uploader s3manageriface.UploaderAPI, bucket, publicURL string, logger logger.Logger) *MediaService {
	return &MediaService{
		uploader:  uploader,
		bucket:    bucket,
		publicURL: publicURL,
		logger:    logger,
	}
}

func (s *MediaService) Upload(ctx context.Context, upload *domain.MediaUpload) (*domain.MediaObject, error) {
	if s.uploader == nil {
		return nil, domain.ErrStorageNotConfigured
	}

	key := path.Join(upload.Folder, time.Now().UTC().Format("2006/01"), uuid.New().String()+upload.Extension())

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         upload.Body,
		ContentType:  aws.String(upload.ContentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		}).Error("Failed to upload media")
		return nil, &domain.ErrUpstreamFailed{Provider: "storage", Err: err}
	}

	url := out.Location
	if s.publicURL != "" {
		url = s.publicURL + "/" + key
	}

	return &domain.MediaObject{
		Key:         key,
		URL:         url,
		ContentType: upload.ContentType,
		Size:        upload.Size,
	}, nil
}
