package sink

import (
	"context"
)

type SinkRecord interface {
	// Convert the record to an INSERT INTO command.
	ToPostgresSql() string

	// Convert the record to a Kafka message in JSON format.
	// This interface will also be used for Pulsar, Kinesis and NATS.
	ToJson() (topic string, key string, data []byte)
}

// AvroSinkRecord is implemented by record types that carry an Avro codec.
// Types without one are emitted as JSON even in avro format, so that one
// mixed batch can always be written.
type AvroSinkRecord interface {
	SinkRecord

	// Convert the record to a Kafka message in Avro format.
	// This interface will also be used for Pulsar, Kinesis and NATS.
	ToAvro() (topic string, key string, data []byte)
}

type BaseSinkRecord struct {
}

func (r BaseSinkRecord) ToPostgresSql() string {
	panic("not implemented")
}

func (r BaseSinkRecord) ToJson() (topic string, key string, data []byte) {
	panic("not implemented")
}

// Convert the record to a message in the given format.
func RecordToKafka(r SinkRecord, format string) (topic string, key string, data []byte) {
	if format == "json" {
		return r.ToJson()
	} else if format == "avro" {
		if a, ok := r.(AvroSinkRecord); ok {
			return a.ToAvro()
		}
		return r.ToJson()
	} else {
		panic("unsupported format")
	}
}

type Sink interface {
	Prepare(topics []string) error

	WriteRecord(ctx context.Context, format string, record SinkRecord) error

	// Flush marks the end of one batch. Buffering sinks persist everything
	// written since the previous Flush; streaming sinks may treat it as a no-op.
	Flush(ctx context.Context) error

	Close() error
}
