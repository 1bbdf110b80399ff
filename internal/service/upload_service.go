package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Upload kinds accepted by the upload service. Size and content-type limits
// are enforced by the upload widget, not here.
const (
	UploadKindImage    = "image"
	UploadKindResource = "resource"
)

// PresignedUpload is a one-shot upload grant: the client PUTs the file to
// UploadURL and stores PublicURL on the course or resource afterwards.
type PresignedUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// UploadService issues presigned URLs against the object storage service.
type UploadService interface {
	PresignUpload(ctx context.Context, kind, filename string) (*PresignedUpload, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

type uploadService struct {
	presignClient *s3.PresignClient
	s3URL         string
	bucket        string
	expiry        time.Duration
}

// NewUploadService creates an UploadService backed by the given S3 client.
func NewUploadService(s3Client *s3.Client, s3URL, bucket string, expiry time.Duration) UploadService {
	return &uploadService{
		presignClient: s3.NewPresignClient(s3Client),
		s3URL:         s3URL,
		bucket:        bucket,
		expiry:        expiry,
	}
}

func (s *uploadService) PresignUpload(ctx context.Context, kind, filename string) (*PresignedUpload, error) {
	var prefix string
	switch kind {
	case UploadKindImage:
		prefix = "images"
	case UploadKindResource:
		prefix = "resources"
	default:
		return nil, &ValidationError{Missing: []string{"kind"}}
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(filename))

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &PresignedUpload{
		Key:       key,
		UploadURL: req.URL,
		// Path-style URL; the bucket is public-read for images and resources.
		PublicURL: fmt.Sprintf("%s/%s/%s", s.s3URL, s.bucket, key),
	}, nil
}

func (s *uploadService) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}
