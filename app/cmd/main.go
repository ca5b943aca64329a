package main

import (
	"context"
	"os"

	"github.com/ribgsilva/noteful-api/app/cmd/schema"
	"github.com/ribgsilva/noteful-api/app/cmd/seed"
	"github.com/ribgsilva/noteful-api/persistence/v1/database"
	"github.com/ribgsilva/noteful-api/platform/env"
	"github.com/ribgsilva/noteful-api/sys"
	"go.uber.org/zap"
)

func listCommands() {
	println("Commands")
	println("\tschema <create|delete|help>\t- Manage the database indexes")
	println("\tseed\t\t\t\t- Insert the bundled fixture data")
	println()
	schema.ListCommands()
	seed.ListCommands()
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}

	// empty logger
	log := zap.NewNop().Sugar()
	stores, err := initVars(log)
	if err != nil {
		println("error:", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			println("could not close db conn gracefully:", err.Error())
		}
	}()

	switch os.Args[1] {
	case "schema":
		if stores.DB == nil {
			println("schema commands need the mongo driver")
			return
		}
		schema.Run(stores.DB, os.Args[2:])
	case "seed":
		if err := seed.Run(stores); err != nil {
			println("failed to seed:", err.Error())
		}
	default:
		listCommands()
	}
}

func initVars(log *zap.SugaredLogger) (database.Stores, error) {
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", database.DriverMongo)
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "mongodb://localhost:27017")
	sys.Configs.Database.Name = env.OrDefault(log, "DATABASE_NAME", "noteful")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	return database.Open(context.Background(), database.Config{
		Driver:           sys.Configs.Database.Driver,
		ConnectionURL:    sys.Configs.Database.ConnectionURL,
		Name:             sys.Configs.Database.Name,
		PingTimeout:      sys.Configs.Database.PingTimeout,
		OperationTimeout: sys.Configs.Database.OperationTimeout,
	})
}
