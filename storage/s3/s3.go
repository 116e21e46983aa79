// Package s3 implements imagenedit.Storage on S3-compatible object stores
// using the AWS SDK v2. A custom endpoint can be supplied for non-AWS
// services (MinIO, Cloudflare R2, etc.).
package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mhpenta/imagenedit"
)

// Config configures the S3 storage backend.
type Config struct {
	// Bucket is the target bucket name.
	Bucket string

	// Region is the bucket's region (e.g., "us-east-1").
	Region string

	// Endpoint is an optional custom host for S3-compatible services
	// (e.g., "s3.us-west-002.backblazeb2.com"). Empty means AWS.
	Endpoint string

	// AccessKey and SecretKey are static credentials. When both are empty
	// the SDK's default credential chain is used.
	AccessKey string
	SecretKey string
}

// Storage persists generated images to an S3 bucket.
type Storage struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// Ensure Storage implements the interface.
var _ imagenedit.Storage = (*Storage)(nil)

// New creates an S3 storage backend from the given config.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage: bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3 storage: loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s", cfg.Endpoint))
			// S3-compatible services generally expect path-style addressing.
			o.UsePathStyle = true
		}
	})

	return &Storage{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}, nil
}

// SaveFile uploads image data under the given object path and returns the
// object's URL.
func (s *Storage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 storage: uploading %s: %w", path, err)
	}

	return s.objectURL(path), nil
}

// objectURL builds the public URL for an uploaded object.
func (s *Storage) objectURL(path string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("https://%s/%s/%s", s.endpoint, s.bucket, path)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, path)
}
