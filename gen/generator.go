package gen

import (
	"time"

	"foodgen/sink"
	"foodgen/sink/kafka"
	"foodgen/sink/kinesis"
	"foodgen/sink/mysql"
	"foodgen/sink/nats"
	"foodgen/sink/postgres"
	"foodgen/sink/pulsar"
	"foodgen/sink/s3"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type GeneratorConfig struct {
	S3       s3.S3Config
	Postgres postgres.PostgresConfig
	Mysql    mysql.MysqlConfig
	Kafka    kafka.KafkaConfig
	Pulsar   pulsar.PulsarConfig
	Kinesis  kinesis.KinesisConfig
	Nats     nats.NatsConfig

	// Whether to print the content of every record.
	PrintInsert bool
	// The sink type.
	Sink string
	// The target record count of one batch.
	BatchSize int
	// The pause between two batches.
	Interval time.Duration
	// The throttled records-per-second. Zero means unthrottled.
	Qps int
	// The seed for the random source. Zero picks a random seed.
	Seed int64

	// Whether the tail probability is high.
	// If true, We will use uniform distribution for randomizing values.
	HeavyTail bool

	// The record format, used when the sink is a message queue.
	Format string
}

// BatchGenerator builds one self-consistent, validated batch of records at
// a time. A batch is fully built before any of it is handed to a sink.
type BatchGenerator interface {
	Topics() []string

	Generate() []sink.SinkRecord
}

type RandDist interface {
	// Rand returns a random number ranging from [0, max].
	Rand(max float64) float64
}

// NewRandDist builds the value distribution. A non-zero seed makes the
// distribution reproducible alongside the rest of the generator.
func NewRandDist(cfg GeneratorConfig) RandDist {
	var src exprand.Source
	if cfg.Seed != 0 {
		src = exprand.NewSource(uint64(cfg.Seed))
	}
	if cfg.HeavyTail {
		return UniformDist{src: src, u: make(map[float64]distuv.Uniform)}
	} else {
		return PoissonDist{src: src, ps: make(map[float64]distuv.Poisson)}
	}
}

type UniformDist struct {
	src exprand.Source
	u   map[float64]distuv.Uniform
}

func (ud UniformDist) Rand(max float64) float64 {
	_, ok := ud.u[max]
	if !ok {
		ud.u[max] = distuv.Uniform{
			Min: 0,
			Max: max,
			Src: ud.src,
		}
	}
	gen_num := ud.u[max].Rand()
	return gen_num
}

// A more real-world distribution. The tail will have lower probability..
type PoissonDist struct {
	src exprand.Source
	ps  map[float64]distuv.Poisson
}

func (pd PoissonDist) Rand(max float64) float64 {
	_, ok := pd.ps[max]
	if !ok {
		pd.ps[max] = distuv.Poisson{
			Lambda: max / 2,
			Src:    pd.src,
		}
	}
	gen_num := pd.ps[max].Rand()
	return gen_num
}
