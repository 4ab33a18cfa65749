package s3

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"foodgen/sink"
)

type S3Config struct {
	Bucket string
	Prefix string
	Region string
}

// S3Sink buffers one batch of newline-JSON records and uploads it on Flush
// as a single gzip-compressed object under a date/hour-partitioned key.
type S3Sink struct {
	buffer bytes.Buffer
	count  int
	client *s3.S3
	cfg    S3Config
}

func OpenS3Sink(cfg S3Config) (*S3Sink, error) {
	ss := session.Must(session.NewSession())
	client := s3.New(ss, aws.NewConfig().WithRegion(cfg.Region))
	return &S3Sink{
		client: client,
		cfg:    cfg,
	}, nil
}

func (p *S3Sink) Prepare(topics []string) error {
	return nil
}

func (p *S3Sink) Close() error {
	if p.count == 0 {
		return nil
	}
	return p.Flush(context.Background())
}

func (p *S3Sink) WriteRecord(ctx context.Context, format string, record sink.SinkRecord) error {
	_, _, data := record.ToJson()

	_, err := p.buffer.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write record to buffer: %s", err)
	}
	err = p.buffer.WriteByte('\n')
	if err != nil {
		return fmt.Errorf("failed to write new-line to buffer: %s", err)
	}
	p.count++
	return nil
}

// Flush uploads the buffered batch. An empty batch is an error: the
// generator must never hand an empty record sequence to the emitter.
func (p *S3Sink) Flush(ctx context.Context) error {
	if p.count == 0 {
		return fmt.Errorf("no records to upload")
	}

	key, body, err := batchObject(p.cfg.Prefix, time.Now().UTC(), p.buffer.Bytes())
	if err != nil {
		return err
	}
	_, err = p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/gzip"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object to s3: %s", err)
	}
	logrus.WithFields(logrus.Fields{
		"records": p.count,
		"object":  fmt.Sprintf("s3://%s/%s", p.cfg.Bucket, key),
	}).Info("uploaded batch")

	p.buffer.Reset()
	p.count = 0
	return nil
}

// batchObject builds the time-partitioned object key and gzips the batch
// body. Exactly-once naming relies on the randomness of the suffix only.
func batchObject(prefix string, now time.Time, data []byte) (key string, gz []byte, err error) {
	u := uuid.New()
	key = fmt.Sprintf("%s/date=%s/hour=%s/part-%s.json.gz",
		prefix, now.Format("2006-01-02"), now.Format("15"), hex.EncodeToString(u[:]))

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return "", nil, fmt.Errorf("failed to compress batch: %s", err)
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to compress batch: %s", err)
	}
	return key, buf.Bytes(), nil
}
