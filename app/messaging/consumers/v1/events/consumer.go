package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consumer applies resource events through the business cores.
type Consumer struct {
	Log     *zap.SugaredLogger
	Notes   note.Core
	Folders lookup.Core
	Tags    lookup.Core
}

// Consume receives messages until ctx is cancelled, handling at most maxWorkers
// at a time. Every message is acked, including the ones that fail.
func (c Consumer) Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			c.Log.Infof("message received: %s", string(m.Body))
			if err := c.Handle(ctx, m.Body); err != nil {
				c.Log.Errorw("message", "ERROR", err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	// cancellation is the normal way to stop
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Handle decodes and applies a single event.
func (c Consumer) Handle(ctx context.Context, body []byte) error {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case NoteCreate:
		var n note.NewNote
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		created, err := c.Notes.Create(ctx, n)
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", e.Type, err)
		}
		c.Log.Infow("message", "type", e.Type, "id", created.ID)
	case NoteDelete:
		r, err := decodeRef(e)
		if err != nil {
			return err
		}
		if err := c.Notes.Delete(ctx, r.ID); err != nil {
			return fmt.Errorf("failed to apply %s: %w", e.Type, err)
		}
	case FolderCreate:
		return c.createItem(ctx, c.Folders, e)
	case FolderDelete:
		return c.deleteItem(ctx, c.Folders, e)
	case TagCreate:
		return c.createItem(ctx, c.Tags, e)
	case TagDelete:
		return c.deleteItem(ctx, c.Tags, e)
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}

func (c Consumer) createItem(ctx context.Context, core lookup.Core, e Event) error {
	var n lookup.NewItem
	if err := json.Unmarshal(e.Data, &n); err != nil {
		return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
	}
	created, err := core.Create(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", e.Type, err)
	}
	c.Log.Infow("message", "type", e.Type, "id", created.ID)
	return nil
}

func (c Consumer) deleteItem(ctx context.Context, core lookup.Core, e Event) error {
	r, err := decodeRef(e)
	if err != nil {
		return err
	}
	if err := core.Delete(ctx, r.ID); err != nil {
		return fmt.Errorf("failed to apply %s: %w", e.Type, err)
	}
	return nil
}

func decodeRef(e Event) (ref, error) {
	var r ref
	if err := json.Unmarshal(e.Data, &r); err != nil {
		return ref{}, fmt.Errorf("failed to parse %s data: %w", e.Type, err)
	}
	return r, nil
}
