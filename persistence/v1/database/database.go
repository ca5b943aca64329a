// Package database opens the configured document store and exposes the
// resource stores built on it.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/persistence/v1/lookupdb"
	"github.com/ribgsilva/noteful-api/persistence/v1/memory"
	"github.com/ribgsilva/noteful-api/persistence/v1/notedb"
	"github.com/ribgsilva/noteful-api/persistence/v1/schema"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Driver           string
	ConnectionURL    string
	Name             string
	PingTimeout      time.Duration
	OperationTimeout time.Duration
}

// Stores groups the stores of every resource.
type Stores struct {
	Notes   note.Store
	Folders lookup.Store
	Tags    lookup.Store

	// DB is nil for the memory driver.
	DB     *mongo.Database
	client *mongo.Client
}

// Open connects to the store selected by cfg.Driver, pings it and makes sure
// the indexes the stores rely on exist.
func Open(ctx context.Context, cfg Config) (Stores, error) {
	switch cfg.Driver {
	case DriverMemory:
		return Memory(), nil
	case DriverMongo, "":
	default:
		return Stores{}, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.ConnectionURL))
	if err != nil {
		return Stores{}, fmt.Errorf("error to connect to database: %w", err)
	}

	s := Stores{client: client, DB: client.Database(cfg.Name)}
	if err := s.Check(ctx, cfg.PingTimeout); err != nil {
		_ = client.Disconnect(ctx)
		return Stores{}, fmt.Errorf("could not connect to database: %w", err)
	}

	// name uniqueness relies on the index, so it must exist before any write
	if err := schema.Create(ctx, s.DB); err != nil {
		_ = client.Disconnect(ctx)
		return Stores{}, err
	}

	s.Notes = notedb.NewStore(s.DB, cfg.OperationTimeout)
	s.Folders = lookupdb.NewStore(s.DB, lookupdb.Folders, cfg.OperationTimeout)
	s.Tags = lookupdb.NewStore(s.DB, lookupdb.Tags, cfg.OperationTimeout)
	return s, nil
}

// Memory returns fresh in-process stores.
func Memory() Stores {
	return Stores{
		Notes:   memory.NewNoteStore(),
		Folders: memory.NewLookupStore(),
		Tags:    memory.NewLookupStore(),
	}
}

// Check pings the document store. It always succeeds for the memory driver.
func (s Stores) Check(ctx context.Context, timeout time.Duration) error {
	if s.client == nil {
		return nil
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeout)
	defer pingCancel()
	return s.client.Ping(pingCtx, readpref.Primary())
}

func (s Stores) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
