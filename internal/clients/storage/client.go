package storage

import (
	"context"
	"fmt"
	"io"
	"zatch-server/internal/config"
	"zatch-server/internal/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client uploads campaign screenshots to an S3-compatible bucket.
type Client struct {
	s3     *s3.Client
	bucket string
	logger *observability.Logger
}

// NewClient creates a new storage client
func NewClient(ctx context.Context, cfg config.StorageConfig, logger *observability.Logger) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		s3:     client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// Upload stores an object under key and returns the object key on success.
func (c *Client) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "bucket", Value: c.bucket},
		observability.Field{Key: "object_key", Value: key},
	)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to upload object", err)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	c.logger.Info(ctx, "uploaded screenshot")
	return key, nil
}
