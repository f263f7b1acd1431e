package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectPutter is the subset of *minio.Client used by ObjectSink.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ObjectConfig describes an S3-compatible bucket.
type ObjectConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
}

// ObjectSink uploads blobs as objects named <prefix>/<name>.
type ObjectSink struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewObjectSink connects a minio client for cfg. No request is made until
// the first Put.
func NewObjectSink(cfg ObjectConfig) (*ObjectSink, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("export: minio client for %s: %w", cfg.Endpoint, err)
	}
	return NewObjectSinkWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewObjectSinkWithClient wraps an existing client.
func NewObjectSinkWithClient(client ObjectPutter, bucket, prefix string) *ObjectSink {
	return &ObjectSink{client: client, bucket: bucket, prefix: prefix}
}

// WithPrefix returns a copy of s whose keys are nested under sub.
func (s *ObjectSink) WithPrefix(sub string) *ObjectSink {
	c := *s
	c.prefix = path.Join(s.prefix, sub)
	return &c
}

// Key returns the object key used for name.
func (s *ObjectSink) Key(name string) string {
	return path.Join(s.prefix, name)
}

// Put uploads body as a text/plain object.
func (s *ObjectSink) Put(ctx context.Context, name string, body []byte) error {
	key := s.Key(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return fmt.Errorf("export: put %s/%s: %w", s.bucket, key, err)
	}
	return nil
}
