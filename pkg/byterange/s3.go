package byterange

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/internal/mmfile"
)

// S3Options configures the S3 client used for s3:// URIs.
type S3Options struct {
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// ObjectAPI is the subset of *s3.Client the provider needs.
type ObjectAPI interface {
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 serves ranges of an S3 object through ranged GetObject requests.
type S3 struct {
	api    ObjectAPI
	bucket string
	key    string
	size   int64
	opts   Options
}

// ParseS3URI splits s3://bucket/key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("parse %q: %w", uri, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("not an s3 URI: %q", uri)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("s3 URI %q has no object key", uri)
	}
	return u.Host, key, nil
}

// OpenS3 loads the default AWS configuration and opens the object at uri.
func OpenS3(ctx context.Context, uri string, opts Options, s3opts S3Options) (*S3, error) {
	var loadOpts []func(*config.LoadOptions) error
	if s3opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(s3opts.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3opts.Endpoint)
		}
		o.UsePathStyle = s3opts.UsePathStyle
	})
	return NewS3(ctx, client, uri, opts)
}

// NewS3 opens the object at uri using api.
func NewS3(ctx context.Context, api ObjectAPI, uri string, opts Options) (*S3, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	head, err := api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", uri, err)
	}
	return &S3{
		api:    api,
		bucket: bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
		opts:   opts,
	}, nil
}

func (p *S3) Name() string { return "s3://" + p.bucket + "/" + p.key }

func (p *S3) Size() int64 { return p.size }

// ReadRange fetches the range. Ranges above the in-memory threshold are
// streamed into a temporary spool.
func (p *S3) ReadRange(ctx context.Context, start, end int64) (*Range, error) {
	if err := checkRange(p.Name(), p.size, start, end); err != nil {
		return nil, err
	}
	out, err := p.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(p.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", start, end)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s [%d,%d]: %w", p.Name(), start, end, err)
	}
	defer out.Body.Close()

	n := end - start + 1
	if n <= p.opts.threshold() {
		data := make([]byte, n)
		if _, err := io.ReadFull(out.Body, data); err != nil {
			return nil, fmt.Errorf("read %s [%d,%d]: %w", p.Name(), start, end, err)
		}
		metrics.BytesRead.WithLabelValues("s3", "memory").Add(float64(n))
		return &Range{Start: start, End: end, data: data}, nil
	}

	spool, err := mmfile.NewSpool(p.opts.TempDir)
	if err != nil {
		return nil, err
	}
	copied, err := io.Copy(spool, io.LimitReader(out.Body, n))
	if err == nil && copied != n {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		spool.Close()
		return nil, fmt.Errorf("spool %s [%d,%d]: %w", p.Name(), start, end, err)
	}
	metrics.BytesRead.WithLabelValues("s3", "disk").Add(float64(n))
	return &Range{
		Start: start,
		End:   end,
		disk:  spool,
		mapper: func() ([]byte, func() error, error) {
			b, err := spool.Bytes()
			return b, nil, err
		},
		closer: spool,
	}, nil
}

func (p *S3) Close() error { return nil }
