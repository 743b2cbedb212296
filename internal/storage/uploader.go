package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/codepedia/lomba-api/internal/config"
)

// S3Uploader stores uploaded files in a public S3 bucket and hands back their
// URLs.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(ctx context.Context, conf *config.S3Config) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.Region))
	if err != nil {
		return nil, fmt.Errorf("awsconfig.LoadDefaultConfig -> %w", err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: conf.Bucket,
		region: conf.Region,
	}, nil
}

// Upload writes body under a slugged prefix with a random key segment, so the
// same filename can be uploaded twice without clobbering.
func (u *S3Uploader) Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s%s", slug.Make(prefix), uuid.NewString(), filepath.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("client.PutObject -> %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
