// Package storage upload media (video, thumbnail, avatar, cover)
// lên một object store tương thích S3.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"vidtube/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// MediaStorage upload file lên bucket cấu hình sẵn và trả về URL public.
type MediaStorage struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

// NewMediaStorage cấu hình uploader trỏ tới object store trong cấu hình server.
// Endpoint rỗng sẽ dùng AWS mặc định; endpoint tùy chỉnh dùng path-style (MinIO).
func NewMediaStorage(ctx context.Context, cfg *config.Configuration) (*MediaStorage, error) {
	if strings.TrimSpace(cfg.S3_Bucket) == "" {
		return nil, fmt.Errorf("media storage: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3_Region),
	}

	if strings.TrimSpace(cfg.S3_Endpoint) != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{
					URL:           cfg.S3_Endpoint,
					SigningRegion: cfg.S3_Region,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
		u.LeavePartsOnError = false
	})

	return &MediaStorage{
		uploader: uploader,
		bucket:   cfg.S3_Bucket,
		baseURL:  strings.TrimSuffix(cfg.S3_PublicBaseURL, "/"),
	}, nil
}

// Save upload nội dung lên bucket và trả về URL public của object.
// folder phân nhóm object theo loại media (videos, thumbnails, avatars, covers).
func (s *MediaStorage) Save(ctx context.Context, folder string, filename string, contentType string, r io.Reader) (string, error) {
	key := s.objectKey(folder, filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   manager.ReadSeekCloser(r),
		ACL:    s3types.ObjectCannedACLPublicRead,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("media storage upload %s: %w", key, err)
	}

	if s.baseURL == "" {
		return key, nil
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// objectKey sinh key duy nhất, giữ lại extension của file gốc
func (s *MediaStorage) objectKey(folder string, filename string) string {
	ext := filepath.Ext(filename)
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return uuid.NewString() + ext
	}
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)
}
