package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"portal_servicos/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrForeignURL = errors.New("url does not belong to the attachment bucket")

// NewMinioClient connects to MinIO and makes sure the bucket exists. New
// buckets get a public read-only policy so attachment URLs resolve directly.
func NewMinioClient(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if exists {
		return client, nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return nil, err
	}
	policy := `{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Action": ["s3:GetObject"],
				"Effect": "Allow",
				"Principal": "*",
				"Resource": "arn:aws:s3:::` + bucket + `/*"
			}
		]
	}`
	if err := client.SetBucketPolicy(ctx, bucket, policy); err != nil {
		return nil, err
	}
	log.Printf("[attachment][storage] bucket created bucket=%s", bucket)
	return client, nil
}

type MinioBlobStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	nowFn     func() time.Time
}

var _ interfaces.IBlobStore = (*MinioBlobStore)(nil)

func NewMinioBlobStore(client *minio.Client, bucket, publicURL string) *MinioBlobStore {
	return &MinioBlobStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		nowFn:     time.Now,
	}
}

func (s *MinioBlobStore) Put(ctx context.Context, f interfaces.BlobFile) (string, error) {
	key := objectKey(s.nowFn(), f.Name)
	_, err := s.client.PutObject(ctx, s.bucket, key, f.Reader, f.Size, minio.PutObjectOptions{
		ContentType: f.ContentType,
	})
	if err != nil {
		log.Printf("[attachment][storage] put failed key=%s err=%v", key, err)
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

func (s *MinioBlobStore) Get(ctx context.Context, url string) ([]byte, error) {
	key, ok := strings.CutPrefix(url, s.publicURL+"/"+s.bucket+"/")
	if !ok || key == "" {
		return nil, ErrForeignURL
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func objectKey(now time.Time, name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s/%d_%s", now.UTC().Format("2006/01"), now.UnixNano(), base)
}
