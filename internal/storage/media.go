// Package storage uploads menu and venue images to S3-compatible object
// storage and resolves their public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/spec-kit/venue-service/internal/config"
)

// MediaStore stores binary objects under derived keys. Uploads overwrite:
// the key embeds a timestamp, so collisions only happen on deliberate re-use.
type MediaStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type s3Media struct {
	client *s3.Client
	cfg    config.MediaConfig
}

// NewS3Media builds an S3-backed media store.
func NewS3Media(ctx context.Context, cfg config.MediaConfig) (MediaStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &s3Media{client: s3.NewFromConfig(awsCfg), cfg: cfg}, nil
}

func (m *s3Media) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(m.cfg.Bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := m.client.PutObject(ctx, input)
	return err
}

func (m *s3Media) Delete(ctx context.Context, key string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

func (m *s3Media) PublicURL(key string) string {
	if m.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(m.cfg.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.cfg.Bucket, m.cfg.Region, key)
}

// ProductImageKey derives the object key for a product image:
// <venue-slug>/<product-slug>-<millis><ext>.
func ProductImageKey(venueName, productName, ext string, now time.Time) string {
	return fmt.Sprintf("%s/%s-%d%s", slugify(venueName), slugify(productName), now.UnixMilli(), ext)
}

// VenueLogoKey derives the object key for a venue logo.
func VenueLogoKey(venueName, ext string, now time.Time) string {
	return fmt.Sprintf("logos/%s-%d%s", slugify(venueName), now.UnixMilli(), ext)
}

// slugify lowercases and replaces anything outside [a-z0-9] with dashes so
// keys stay URL-safe regardless of venue/product naming.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return b.String()
}
