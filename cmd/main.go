package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/bolihq/bolireg"
	"github.com/bolihq/bolireg/common"
	"github.com/bolihq/bolireg/ledger"
)

func main() {
	app := &cli.App{
		Name: "bolireg",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db_dir", Value: "./data/bolt", Usage: "bolt db dir path", EnvVars: []string{"DB_DIR"}},
			&cli.StringFlag{Name: "mysql", Value: "root@tcp(127.0.0.1:3306)/bolireg?charset=utf8mb4&parseTime=True&loc=Local", Usage: "mysql dsn", EnvVars: []string{"MYSQL"}},
			&cli.BoolFlag{Name: "use_sqlite", Value: false, Usage: "run with sqlite instead of mysql", EnvVars: []string{"USE_SQLITE"}},
			&cli.StringFlag{Name: "sqlite_dir", Value: "./data/sqlite", Usage: "sqlite db dir path", EnvVars: []string{"SQLITE_DIR"}},
			&cli.BoolFlag{Name: "use_mongo", Value: false, Usage: "run with mongodb instead of boltdb", EnvVars: []string{"USE_MONGO"}},
			&cli.StringFlag{Name: "mongo_uri", Value: "mongodb://localhost:27017", Usage: "mongodb uri", EnvVars: []string{"MONGO_URI"}},
			&cli.StringFlag{Name: "config_dsn", Value: "root@tcp(127.0.0.1:3306)/bolireg_config?charset=utf8mb4&parseTime=True&loc=Local", Usage: "platform config db dsn", EnvVars: []string{"CONFIG_DSN"}},

			&cli.StringFlag{Name: "operator", Usage: "platform operator identity", EnvVars: []string{"OPERATOR"}},
			&cli.StringFlag{Name: "treasury", Usage: "platform treasury identity", EnvVars: []string{"TREASURY"}},
			&cli.StringFlag{Name: "retirement_sink", Usage: "carbon retirement sink identity", EnvVars: []string{"RETIREMENT_SINK"}},

			&cli.StringFlag{Name: "kafka_uri", Value: "127.0.0.1:9092", Usage: "kafka broker uri", EnvVars: []string{"KAFKA_URI"}},
			&cli.BoolFlag{Name: "use_kafka", Value: false, Usage: "publish audit events to kafka", EnvVars: []string{"USE_KAFKA"}},

			&cli.StringFlag{Name: "port", Value: ":8080", EnvVars: []string{"PORT"}},
		},
		Action: run,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	s := bolireg.New(
		c.String("db_dir"), c.String("mysql"), c.String("sqlite_dir"), c.Bool("use_sqlite"),
		c.String("mongo_uri"), c.Bool("use_mongo"),
		c.String("config_dsn"),
		c.String("operator"), c.String("treasury"), c.String("retirement_sink"),
		ledger.NewInMemory(),
		c.String("kafka_uri"), c.Bool("use_kafka"),
	)
	common.NewMetricServer()
	s.Run(c.String("port"))

	<-signals
	s.Close()

	return nil
}
