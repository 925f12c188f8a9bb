// Package assets uploads candidate files (resumes, avatars) to the portal's
// S3-compatible asset host. The host is addressed through the asset-hosting
// account identifier from the environment; the portal itself never proxies
// the bytes.
package assets

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/avolkov/hirelink/internal/logging"
)

// Config addresses the asset host. Endpoint is derived from AccountID when
// not set explicitly; Bucket likewise.
type Config struct {
	AccountID       string
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// endpoint constructs the upload endpoint from the account identifier.
func (c Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("https://%s.assets.hirelink.io", c.AccountID)
}

func (c Config) bucket() string {
	if c.Bucket != "" {
		return c.Bucket
	}
	return "hirelink-" + c.AccountID
}

// Uploader puts asset objects with randomized keys.
type Uploader struct {
	client *s3.Client
	bucket string
	log    logging.Logger
}

func NewUploader(ctx context.Context, cfg Config, log logging.Logger) (*Uploader, error) {
	if cfg.AccountID == "" && cfg.Endpoint == "" {
		return nil, fmt.Errorf("asset host not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load asset host config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.endpoint())
		o.UsePathStyle = true
	})

	return &Uploader{client: client, bucket: cfg.bucket(), log: log}, nil
}

// resumeKey randomizes the object key, preserving the original extension.
func resumeKey(candidateID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("resumes/%s/%s%s", candidateID, uuid.New(), ext)
}

// UploadResume stores one resume and returns its object key.
func (u *Uploader) UploadResume(ctx context.Context, candidateID, filename string, body io.Reader) (string, error) {
	key := resumeKey(candidateID, filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &u.bucket,
		Key:    &key,
		Body:   body,
	})
	if err != nil {
		return "", fmt.Errorf("upload resume: %w", err)
	}

	u.log.Info(ctx, "resume uploaded", "key", key)
	return key, nil
}
