// Package storage persists message media to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
)

type S3Store struct {
	client    *s3.Client
	bucket    string
	endpoint  string
	region    string
	pathStyle bool
	publicURL string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewS3Store(cfg *config.StorageConfig, logger *zap.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("storage credentials are required")
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	// an endpoint carrying the bucket host prefix is a common misconfiguration
	if endpoint != "" && strings.Contains(endpoint, "://"+cfg.Bucket+".") {
		endpoint = strings.Replace(endpoint, cfg.Bucket+".", "", 1)
	}

	pathStyle := cfg.PathStyle || strings.Contains(cfg.Bucket, ".")

	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = pathStyle
	})

	logger.Info("S3 client initialized",
		zap.String("bucket", cfg.Bucket),
		zap.String("region", cfg.Region),
		zap.String("endpoint", endpoint),
	)

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		endpoint:  endpoint,
		region:    cfg.Region,
		pathStyle: pathStyle,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		timeout:   config.Seconds(cfg.Timeout),
		logger:    logger,
	}, nil
}

// Put uploads data under key and returns its public URL.
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	input := &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=3600"),
	}
	if strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/") || contentType == "application/pdf" {
		input.ContentDisposition = aws.String("inline")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.Debug("Media uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int("size", len(data)),
	)

	return s.PublicURL(key), nil
}

func (s *S3Store) PublicURL(key string) string {
	switch {
	case s.publicURL != "":
		return s.publicURL + "/" + key
	case s.endpoint != "" && s.pathStyle:
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	case s.endpoint != "":
		scheme, host, found := strings.Cut(s.endpoint, "://")
		if !found {
			return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key)
		}
		return fmt.Sprintf("%s://%s.%s/%s", scheme, s.bucket, host, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	}
}
