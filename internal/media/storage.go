package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/barbershop-bg/booking-api/internal/config"
)

// Storage uploads processed images to an S3-compatible bucket. A nil
// Storage means uploads are disabled (no credentials configured).
type Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewStorage(cfg *config.Config) *Storage {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Storage{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func (s *Storage) Enabled() bool {
	return s != nil
}

// UploadServiceImage stores the image under a stable per-service key and
// returns the public URL to save on the service row.
func (s *Storage) UploadServiceImage(ctx context.Context, serviceID uint, data []byte) (string, error) {
	key := fmt.Sprintf("services/%d.webp", serviceID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}
