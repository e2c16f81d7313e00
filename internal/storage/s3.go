package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/autoassist/auto-assist-api/internal/config"
)

// S3Store keeps vehicle images in an S3 bucket, optionally fronted by
// CloudFront. Selected with STORAGE_DRIVER=s3.
type S3Store struct {
	client           *s3.Client
	bucket           string
	region           string
	cloudFrontDomain string
}

func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client:           s3.NewFromConfig(sdkConfig),
		bucket:           cfg.S3Bucket,
		region:           cfg.S3Region,
		cloudFrontDomain: cfg.S3CloudFrontDomain,
	}, nil
}

func (s *S3Store) Save(ctx context.Context, up Upload) (string, error) {
	if err := Validate(up); err != nil {
		return "", err
	}

	name := newFilename(up.ContentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        up.Reader,
		ContentType: aws.String(up.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}
	return name, nil
}

// Delete removes the object. S3 treats deleting a missing key as success,
// which matches the idempotent cleanup contract.
func (s *S3Store) Delete(ctx context.Context, filename string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from S3: %w", err)
	}
	return nil
}

func (s *S3Store) URL(filename string) string {
	if s.cloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cloudFrontDomain, filename)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, filename)
}
