package schema

import (
	"context"

	"github.com/ribgsilva/noteful-api/persistence/v1/schema"
	"go.mongodb.org/mongo-driver/mongo"
)

func ListCommands() {
	println("Schema Commands")
	println("\tcreate\t\t\t- Creates the indexes")
	println("\tdelete\t\t\t- Drops the database")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(db *mongo.Database, options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	switch options[0] {
	case "create":
		println("creating schema")
		if err := schema.Create(context.Background(), db); err != nil {
			println("failed to create schema:", err.Error())
		} else {
			println("created schema")
		}
	case "delete":
		println("deleting schema")
		if err := schema.Drop(context.Background(), db); err != nil {
			println("failed to delete schema:", err.Error())
		} else {
			println("deleted schema")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}
