package s3

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgen/models"
)

func TestBatchObject(t *testing.T) {
	now := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	body := []byte("{\"type\":\"customer\"}\n{\"type\":\"orders\"}\n")

	key, gz, err := batchObject("raw/events", now, body)
	require.NoError(t, err)
	assert.Regexp(t, `^raw/events/date=2026-08-29/hour=07/part-[0-9a-f]{32}\.json\.gz$`, key)

	r, err := gzip.NewReader(bytes.NewReader(gz))
	require.NoError(t, err)
	decompressed, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, body, decompressed)
}

func TestBatchObjectKeysAreUnique(t *testing.T) {
	now := time.Now().UTC()
	k1, _, err := batchObject("raw/events", now, []byte("x"))
	require.NoError(t, err)
	k2, _, err := batchObject("raw/events", now, []byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestFlushRejectsEmptyBatch(t *testing.T) {
	p := &S3Sink{}
	err := p.Flush(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
}

func TestWriteRecordBuffersLines(t *testing.T) {
	p := &S3Sink{}
	la := &models.LoginAudit{
		Type:       models.TypeLoginAudit,
		LoginId:    "la-1",
		CustomerId: "c-1",
		LastLogin:  "2026-08-29T10:00:00Z",
	}
	require.NoError(t, p.WriteRecord(context.Background(), "json", la))
	require.NoError(t, p.WriteRecord(context.Background(), "json", la))

	assert.Equal(t, 2, p.count)
	lines := bytes.Split(bytes.TrimRight(p.buffer.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"type":"loginaudit"`)
}
