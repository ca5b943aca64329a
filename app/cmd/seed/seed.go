package seed

import (
	"context"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/persistence/v1/database"
	"github.com/ribgsilva/noteful-api/persistence/v1/seed"
)

func ListCommands() {
	println("Seed Commands")
	println("\tseed\t\t\t- Inserts the bundled folders, tags and notes")
}

// Run loads the fixtures into stores and reports what was inserted.
func Run(stores database.Stores) error {
	data, err := seed.Load()
	if err != nil {
		return err
	}

	counts, err := seed.Run(context.Background(), data,
		note.NewCore(stores.Notes),
		lookup.NewCore("folder", stores.Folders),
		lookup.NewCore("tag", stores.Tags),
	)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	fmt.Printf("inserted %d folders, %d tags, %d notes\n", counts.Folders, counts.Tags, counts.Notes)
	return nil
}
