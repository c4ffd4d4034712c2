package byterange

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func testContent(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func TestBytesProvider(t *testing.T) {
	content := testContent(100)
	p := NewBytes("mem", content)
	require.Equal(t, int64(100), p.Size())

	r, err := p.ReadRange(context.Background(), 10, 19)
	require.NoError(t, err)
	defer r.Close()
	require.True(t, r.InMemory())
	require.Equal(t, int64(10), r.Len())

	b, err := r.Bytes()
	require.NoError(t, err)
	require.Equal(t, content[10:20], b)

	_, err = p.ReadRange(context.Background(), 90, 100)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = p.ReadRange(context.Background(), 5, 4)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestFileProviderThreshold(t *testing.T) {
	content := testContent(8192)
	path := filepath.Join(t.TempDir(), "track.mxf")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	p, err := OpenFile(path, Options{MaxInMemory: 1024})
	require.NoError(t, err)
	defer p.Close()

	small, err := p.ReadRange(context.Background(), 0, 1023)
	require.NoError(t, err)
	require.True(t, small.InMemory())
	b, err := small.Bytes()
	require.NoError(t, err)
	require.Equal(t, content[:1024], b)
	require.NoError(t, small.Close())

	large, err := p.ReadRange(context.Background(), 100, 8191)
	require.NoError(t, err)
	require.False(t, large.InMemory())

	buf := make([]byte, 16)
	_, err = large.ReaderAt().ReadAt(buf, 0)
	require.NoError(t, err)
	require.Equal(t, content[100:116], buf)

	b, err = large.Bytes()
	require.NoError(t, err)
	require.Equal(t, content[100:], b)
	require.NoError(t, large.Close())
	require.NoError(t, large.Close())

	_, err = large.Bytes()
	require.Error(t, err)
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.mxf"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

type fakeS3 struct {
	objects map[string][]byte
	gets    int
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	b, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, fmt.Errorf("no such key")
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(b)))}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gets++
	b := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	var start, end int64
	if _, err := fmt.Sscanf(aws.ToString(in.Range), "bytes=%d-%d", &start, &end); err != nil {
		return nil, err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b[start : end+1]))}, nil
}

func TestS3Provider(t *testing.T) {
	content := testContent(4096)
	api := &fakeS3{objects: map[string][]byte{"media/reel1/video.mxf": content}}

	p, err := NewS3(context.Background(), api, "s3://media/reel1/video.mxf", Options{MaxInMemory: 512, TempDir: t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, int64(4096), p.Size())
	require.Equal(t, "s3://media/reel1/video.mxf", p.Name())

	r, err := p.ReadRange(context.Background(), 4092, 4095)
	require.NoError(t, err)
	require.True(t, r.InMemory())
	b, err := r.Bytes()
	require.NoError(t, err)
	require.Equal(t, content[4092:], b)

	spooled, err := p.ReadRange(context.Background(), 0, 2047)
	require.NoError(t, err)
	require.False(t, spooled.InMemory())
	b, err = spooled.Bytes()
	require.NoError(t, err)
	require.Equal(t, content[:2048], b)
	require.NoError(t, spooled.Close())
	require.Equal(t, 2, api.gets)
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://bucket/a/b.mxf")
	require.NoError(t, err)
	require.Equal(t, "bucket", bucket)
	require.Equal(t, "a/b.mxf", key)

	_, _, err = ParseS3URI("s3://bucket/")
	require.Error(t, err)
	_, _, err = ParseS3URI("/local/file.mxf")
	require.Error(t, err)
}
