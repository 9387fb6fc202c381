package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"eventhub/internal/domain"
)

// S3Config holds configuration for an S3 compatible bucket.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the AWS endpoint, e.g. for MinIO or LocalStack.
	Endpoint      string
	UsePathStyle  bool
	PublicBaseURL string
}

// Config holds configuration for creating an object storage.
type Config struct {
	Provider string
	S3       S3Config
}

// NewObjectStorage creates an object storage from config. Provider "s3" uses
// AWS S3; "noop" or unknown uses a storage that rejects every upload.
func NewObjectStorage(config Config, logger *slog.Logger) (domain.ObjectStorage, error) {
	switch config.Provider {
	case "s3":
		cfg := config.S3
		awsCfg := aws.Config{
			Region: cfg.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				),
			),
			// Uploads are attempted once; failures degrade instead of retrying.
			Retryer: func() aws.Retryer { return aws.NopRetryer{} },
			// S3 compatible servers do not all accept the flexible checksum trailers.
			RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.UsePathStyle
		})
		return &s3Storage{client: client, config: cfg}, nil
	case "noop":
		return &noopStorage{}, nil
	default:
		logger.Warn("unknown storage provider, image uploads disabled", "provider", config.Provider)
		return &noopStorage{}, nil
	}
}

type s3Storage struct {
	client *s3.Client
	config S3Config
}

func (s *s3Storage) Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("%w: put %s/%s: %v", domain.ErrUploadFailed, bucket, key, err)
	}
	return s.objectURL(bucket, key), nil
}

// objectURL returns the public URL of an object.
func (s *s3Storage) objectURL(bucket, key string) string {
	escaped := escapeKey(key)
	switch {
	case s.config.PublicBaseURL != "":
		return strings.TrimSuffix(s.config.PublicBaseURL, "/") + "/" + escaped
	case s.config.Endpoint != "" && s.config.UsePathStyle:
		return strings.TrimSuffix(s.config.Endpoint, "/") + "/" + bucket + "/" + escaped
	case s.config.Endpoint != "":
		u, err := url.Parse(s.config.Endpoint)
		if err == nil && u.Host != "" {
			return u.Scheme + "://" + bucket + "." + u.Host + "/" + escaped
		}
		return strings.TrimSuffix(s.config.Endpoint, "/") + "/" + bucket + "/" + escaped
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.config.Region, escaped)
	}
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

type noopStorage struct{}

func (n *noopStorage) Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	return "", domain.ErrStorageDisabled
}
