package facades

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Shoyeb45/u-tube/internal/logger"
)

// ErrEmptyPath is returned when Upload is called without a local file.
var ErrEmptyPath = errors.New("no local file path given")

// S3Putter is the subset of the S3 client used by the facade.
type S3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds connection settings for an S3-compatible media host.
type S3Config struct {
	Endpoint  string // e.g. http://localhost:9000 for MinIO; empty for AWS
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // base URL objects are served from
}

// MediaS3Facade uploads local files to an S3-compatible media host and
// returns the public URL of the stored object.
type MediaS3Facade struct {
	client    S3Putter
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewMediaS3Facade creates a facade around an existing S3 client.
func NewMediaS3Facade(client S3Putter, bucket, publicURL string) *MediaS3Facade {
	return &MediaS3Facade{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

// NewS3Client builds an S3 client with static credentials. Path-style
// addressing is used whenever a custom endpoint is configured.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// objectKey places objects under media/yyyy/mm/dd/ with a random name,
// keeping the original extension.
func (f *MediaS3Facade) objectKey(localPath string) string {
	d := f.now()
	ext := strings.ToLower(filepath.Ext(localPath))
	return fmt.Sprintf("media/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

// Upload stores the file at localPath and returns its public URL.
// The local file is left in place; the caller owns its cleanup.
func (f *MediaS3Facade) Upload(ctx context.Context, localPath string) (string, error) {
	if localPath == "" {
		return "", ErrEmptyPath
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	key := f.objectKey(localPath)
	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("failed to upload media", "bucket", f.bucket, "key", key, "error", err)
		return "", fmt.Errorf("put object: %w", err)
	}

	url := f.publicURL + "/" + key
	logger.Log.Infow("media uploaded", "bucket", f.bucket, "key", key, "url", url)
	return url, nil
}
