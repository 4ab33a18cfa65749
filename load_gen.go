package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"foodgen/fooddelivery"
	"foodgen/gen"
	"foodgen/sink"
	"foodgen/sink/kafka"
	"foodgen/sink/kinesis"
	"foodgen/sink/mysql"
	"foodgen/sink/nats"
	"foodgen/sink/postgres"
	"foodgen/sink/pulsar"
	"foodgen/sink/s3"
)

func createSink(ctx context.Context, cfg gen.GeneratorConfig) (sink.Sink, error) {
	if cfg.Sink == "s3" {
		return s3.OpenS3Sink(cfg.S3)
	} else if cfg.Sink == "postgres" {
		return postgres.OpenPostgresSink(cfg.Postgres)
	} else if cfg.Sink == "mysql" {
		return mysql.OpenMysqlSink(cfg.Mysql)
	} else if cfg.Sink == "kafka" {
		return kafka.OpenKafkaSink(ctx, cfg.Kafka)
	} else if cfg.Sink == "pulsar" {
		return pulsar.OpenPulsarSink(ctx, cfg.Pulsar)
	} else if cfg.Sink == "kinesis" {
		return kinesis.OpenKinesisSink(cfg.Kinesis)
	} else if cfg.Sink == "nats" {
		return nats.OpenNatsSink(cfg.Nats)
	} else {
		return nil, fmt.Errorf("invalid sink type: %s", cfg.Sink)
	}
}

// generateLoad builds batches and sends them to the given sink, pausing for
// the configured interval between batches. Cancellation is only honored at
// batch boundaries: an in-flight batch is always fully built and emitted, so
// the sink never sees a partially written batch.
func generateLoad(ctx context.Context, cfg gen.GeneratorConfig) error {
	sinkImpl, err := createSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sinkImpl.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	g := fooddelivery.NewGenerator(cfg)
	if err := sinkImpl.Prepare(g.Topics()); err != nil {
		return err
	}

	var rl ratelimit.Limiter
	if cfg.Qps > 0 {
		rl = ratelimit.New(cfg.Qps, ratelimit.WithoutSlack) // per second
	} else {
		rl = ratelimit.NewUnlimited()
	}

	count := int64(0)
	initTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		batch := g.Generate()
		if len(batch) == 0 {
			return fmt.Errorf("generated an empty batch")
		}
		for _, record := range batch {
			if cfg.PrintInsert {
				fmt.Println(record.ToPostgresSql())
			}
			if err := sinkImpl.WriteRecord(ctx, cfg.Format, record); err != nil {
				return err
			}
			rl.Take()
		}
		if err := sinkImpl.Flush(ctx); err != nil {
			return err
		}
		count += int64(len(batch))
		logrus.WithFields(logrus.Fields{
			"batch":   len(batch),
			"total":   count,
			"elapsed": time.Since(initTime).String(),
		}).Info("batch emitted")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(cfg.Interval):
		}
	}
}
