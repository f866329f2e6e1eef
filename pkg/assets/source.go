package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Source fetches raw image bytes by path.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// HTTPSource fetches images from the panel's public assets host.
type HTTPSource struct {
	base  string
	httpc *http.Client
}

// NewHTTPSource returns a source rooted at base (no trailing slash).
func NewHTTPSource(base string) *HTTPSource {
	return &HTTPSource{base: base, httpc: &http.Client{Timeout: 20 * time.Second}}
}

func (s *HTTPSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: build request: %w", err)
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: fetch %s: status %d", path, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return data, nil
}

// S3Source fetches images from an S3 bucket keyed by asset path.
type S3Source struct {
	bucket string
	dl     *s3manager.Downloader
}

// NewS3Source opens an AWS session for the region and returns a downloader
// over the bucket.
func NewS3Source(region, bucket string) (*S3Source, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("assets: aws session: %w", err)
	}
	return &S3Source{bucket: bucket, dl: s3manager.NewDownloader(sess)}, nil
}

func (s *S3Source) Fetch(ctx context.Context, path string) ([]byte, error) {
	buf := aws.NewWriteAtBuffer(nil)
	_, err := s.dl.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("assets: s3 fetch %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
