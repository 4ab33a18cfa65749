package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"foodgen/gen"
)

var cfg gen.GeneratorConfig = gen.GeneratorConfig{}

// The pause between batches is configured in whole seconds, matching the
// INTERVAL_SECONDS environment variable.
var intervalSeconds int

func runCommand() error {
	cfg.Interval = time.Duration(intervalSeconds) * time.Second

	terminateCh := make(chan os.Signal, 1)
	signal.Notify(terminateCh, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-terminateCh
		log.Println("Cancelled")
		cancel()
	}()
	return generateLoad(ctx, cfg)
}

func newApp() *cli.App {
	return &cli.App{
		Commands: []cli.Command{
			{
				Name: "s3",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:        "bucket",
						Usage:       "The S3 bucket to upload batches to",
						EnvVar:      "S3_BUCKET",
						Required:    false,
						Value:       "swiggy-data-generation",
						Destination: &cfg.S3.Bucket,
					},
					cli.StringFlag{
						Name:        "prefix",
						Usage:       "The key prefix under which batches are partitioned",
						EnvVar:      "S3_PREFIX",
						Required:    false,
						Value:       "raw/events",
						Destination: &cfg.S3.Prefix,
					},
					cli.StringFlag{
						Name:        "region",
						Usage:       "The region where the bucket resides",
						EnvVar:      "AWS_REGION",
						Required:    false,
						Value:       "ap-south-1",
						Destination: &cfg.S3.Region,
					},
				},
				Action: func(c *cli.Context) error {
					cfg.Sink = "s3"
					return runCommand()
				},
				HelpName: "foodgen s3",
			},
			{
				Name: "postgres",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:        "host",
						Usage:       "The host address of the PostgreSQL server",
						Required:    false,
						Value:       "localhost",
						Destination: &cfg.Postgres.DbHost,
					},
					cli.StringFlag{
						Name:        "db",
						Usage:       "The database where the target tables are located",
						Required:    false,
						Value:       "dev",
						Destination: &cfg.Postgres.Database,
					},
					cli.IntFlag{
						Name:        "port",
						Usage:       "The port of the PostgreSQL server",
						Required:    false,
						Value:       5432,
						Destination: &cfg.Postgres.DbPort,
					},
					cli.StringFlag{
						Name:        "user",
						Usage:       "The user to Postgres",
						Required:    false,
						Value:       "root",
						Destination: &cfg.Postgres.DbUser,
					},
				},
				Action: func(c *cli.Context) error {
					cfg.Sink = "postgres"
					return runCommand()
				},
			},
			{
				Name: "mysql",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:        "host",
						Usage:       "The host address of the MySQL server",
						Required:    false,
						Value:       "localhost",
						Destination: &cfg.Mysql.DbHost,
					},
					cli.StringFlag{
						Name:        "db",
						Usage:       "The database where the target tables are located",
						Required:    false,
						Value:       "mydb",
						Destination: &cfg.Mysql.Database,
					},
					cli.IntFlag{
						Name:        "port",
						Usage:       "The port of the MySQL server",
						Required:    false,
						Value:       3306,
						Destination: &cfg.Mysql.DbPort,
					},
					cli.StringFlag{
						Name:        "user",
						Usage:       "The user to MySQL",
						Required:    false,
						Value:       "mysqluser",
						Destination: &cfg.Mysql.DbUser,
					},
					cli.StringFlag{
						Name:        "password",
						Usage:       "The password to MySQL",
						Required:    false,
						Value:       "mysqlpw",
						Destination: &cfg.Mysql.DbPassword,
					},
				},
				Action: func(c *cli.Context) error {
					cfg.Sink = "mysql"
					return runCommand()
				},
			},
			{
				Name: "kafka",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:        "brokers",
						Usage:       "Kafka bootstrap brokers to connect to, as a comma separated list",
						Required:    true,
						Destination: &cfg.Kafka.Brokers,
					},
					cli.BoolFlag{
						Name:        "no-recreate",
						Usage:       "Do not recreate the Kafka topic when it exists.",
						Required:    false,
						Destination: &cfg.Kafka.NoRecreateIfExists,
					},
				},
				Action: func(c *cli.Context) error {
					cfg.Sink = "kafka"
					return runCommand()
				},
				HelpName: "foodgen kafka",
			},
			{
				Name: "pulsar",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:        "brokers",
						Usage:       "Pulsar brokers to connect to, as a comma separated list",
						Required:    true,
						Destination: &cfg.Pulsar.Brokers,
					},
				},
				Action: func(c *cli.Context) error {
					cfg.Sink = "pulsar"
					return runCommand()
				},
				HelpName: "foodgen pulsar",
			},
			{
				Name: "kinesis",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:        "region",
						Usage:       "The region where the Kinesis stream resides",
						Required:    true,
						Destination: &cfg.Kinesis.Region,
					},
					cli.StringFlag{
						Name:        "name",
						Usage:       "The Kinesis stream name",
						Required:    true,
						Destination: &cfg.Kinesis.StreamName,
					},
				},
				Action: func(c *cli.Context) error {
					cfg.Sink = "kinesis"
					return runCommand()
				},
				HelpName: "foodgen kinesis",
			},
			{
				Name: "nats",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:        "url",
						Usage:       "The NATS server URL",
						Required:    false,
						Value:       "nats://localhost:4222",
						Destination: &cfg.Nats.Url,
					},
					cli.BoolFlag{
						Name:        "jetstream",
						Usage:       "Whether to publish through JetStream",
						Required:    false,
						Destination: &cfg.Nats.JetStream,
					},
				},
				Action: func(c *cli.Context) error {
					cfg.Sink = "nats"
					return runCommand()
				},
				HelpName: "foodgen nats",
			},
		},
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:        "print",
				Usage:       "Whether to print the content of every record",
				Required:    false,
				Destination: &cfg.PrintInsert,
			},
			cli.IntFlag{
				Name:        "batch-size",
				Usage:       "Target number of records per batch",
				EnvVar:      "BATCH_SIZE",
				Required:    false,
				Value:       1000000,
				Destination: &cfg.BatchSize,
			},
			cli.IntFlag{
				Name:        "interval",
				Usage:       "Pause between two batches, in seconds",
				EnvVar:      "INTERVAL_SECONDS",
				Required:    false,
				Value:       5,
				Destination: &intervalSeconds,
			},
			cli.IntFlag{
				Name:        "qps",
				Usage:       "Number of records to send per second. 0 means unthrottled.",
				Required:    false,
				Value:       0,
				Destination: &cfg.Qps,
			},
			cli.Int64Flag{
				Name:        "seed",
				Usage:       "Seed for the random source. 0 picks a random seed.",
				Required:    false,
				Value:       0,
				Destination: &cfg.Seed,
			},
			cli.StringFlag{
				Name:        "format",
				Usage:       "The output record format: json | avro. Used when the sink is a message queue.",
				Value:       "json",
				Required:    false,
				Destination: &cfg.Format,
			},
			cli.BoolFlag{
				Name:        "heavytail",
				Usage:       "Whether the tail probability is high. If true We will use uniform distribution for randomizing values.",
				Required:    false,
				Destination: &cfg.HeavyTail,
			},
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}
