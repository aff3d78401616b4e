package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var ErrEmptyObject = errors.New("object payload is empty")

// ObjectStorage uploads poster images and returns a public URL for the
// stored object. Failures here are infrastructure failures, never catalog
// errors.
type ObjectStorage interface {
	UploadPoster(ctx context.Context, movieID uuid.UUID, filename, contentType string, payload io.Reader, size int64) (string, error)
}

type minioStorage struct {
	client *minio.Client
	bucket string
	log    *zap.Logger
}

// NewMinioStorage connects to the configured S3-compatible endpoint.
func NewMinioStorage(config utils.StorageConfig, log *zap.Logger) (ObjectStorage, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &minioStorage{
		client: client,
		bucket: config.Bucket,
		log:    log.With(zap.String("component", "storage")),
	}, nil
}

func (s *minioStorage) UploadPoster(ctx context.Context, movieID uuid.UUID, filename, contentType string, payload io.Reader, size int64) (string, error) {
	if size <= 0 {
		return "", ErrEmptyObject
	}
	if filename == "" {
		filename = "poster"
	}

	key := fmt.Sprintf("posters/%s/%d-%s-%s",
		movieID.String(), time.Now().UnixMilli(), uuid.NewString(), filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, payload, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("Failed to upload poster",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("key", key),
		)
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	url := s.client.EndpointURL().JoinPath(s.bucket, key).String()

	s.log.Info("Poster uploaded",
		zap.String("movie_id", movieID.String()),
		zap.String("key", key),
		zap.Int64("size", size),
	)

	return url, nil
}
