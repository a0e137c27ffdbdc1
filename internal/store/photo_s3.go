package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3PutObjectAPI is the part of *s3.Client the photo storage needs.
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3PhotoStorage uploads photos to an S3 compatible bucket. The object key
// is the photo file name.
type s3PhotoStorage struct {
	client s3PutObjectAPI
	bucket string
	logger *logger.Logger
}

// NewS3PhotoStorage builds an S3 client from cfg. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain applies.
// A non-empty Endpoint switches to path-style addressing for MinIO and
// similar servers.
func NewS3PhotoStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (PhotoStorage, error) {
	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 photo storage")

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PhotoStorage(client, cfg.Bucket, logger), nil
}

func newS3PhotoStorage(client s3PutObjectAPI, bucket string, logger *logger.Logger) *s3PhotoStorage {
	return &s3PhotoStorage{client: client, bucket: bucket, logger: logger}
}

func (s *s3PhotoStorage) SavePhoto(ctx context.Context, name string, content io.Reader, size int64, contentType string) error {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          content,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3PhotoStorage.SavePhoto").Str("bucket", s.bucket).Str("key", name).Msg("error uploading photo")
		return fmt.Errorf("%w: %w", ErrPhotoNotSaved, err)
	}

	log.Debug().Str("bucket", s.bucket).Str("key", name).Int64("size", size).Msg("photo uploaded")
	return nil
}
