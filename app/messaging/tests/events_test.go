package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ribgsilva/noteful-api/app/messaging/consumers/v1/events"
	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/persistence/v1/database"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

type EventTests struct {
	topic    *pubsub.Topic
	consumer events.Consumer
}

func TestEvents(t *testing.T) {
	// =======================================================================================================
	// Setup resources

	stores := database.Memory()
	consumer := events.Consumer{
		Log:     zap.NewNop().Sugar(),
		Notes:   note.NewCore(stores.Notes),
		Folders: lookup.NewCore("folder", stores.Folders),
		Tags:    lookup.NewCore("tag", stores.Tags),
	}

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)
	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- consumer.Consume(withCancel, subscription, 2)
	}()

	// =======================================================================================================
	// Run tests

	et := EventTests{topic: topic, consumer: consumer}

	et.testCreateNote(t)
	et.testCreateAndDeleteFolder(t)
	et.testCreateTag(t)
	et.testInvalidEvents(t)

	cancelFunc()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Test Consume: should stop cleanly on cancel: %s", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Test Consume: should stop after cancel")
	}
}

func (et *EventTests) send(t *testing.T, eventType string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal("failed to parse event data: ", err)
	}
	body, err := json.Marshal(events.Event{Type: eventType, Data: raw})
	if err != nil {
		t.Fatal("failed to parse event: ", err)
	}
	if err := et.topic.Send(context.Background(), &pubsub.Message{Body: body}); err != nil {
		t.Fatal("failed to post message to topic: ", err)
	}
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, name string, cond func() bool) {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("Test %s: condition not met before deadline", name)
}

func (et *EventTests) testCreateNote(t *testing.T) {
	et.send(t, events.NoteCreate, note.NewNote{Title: "other", Content: "other text"})

	var found []note.Note
	eventually(t, "testCreateNote", func() bool {
		found, _ = et.consumer.Notes.List(context.Background(), note.Filter{})
		return len(found) == 1
	})

	if found[0].Title != "other" {
		t.Fatalf("Test testCreateNote: should have received \"other\" as title: %v", found[0])
	}
	if found[0].Content != "other text" {
		t.Fatalf("Test testCreateNote: should have received \"other text\" as content: %v", found[0])
	}
}

func (et *EventTests) testCreateAndDeleteFolder(t *testing.T) {
	et.send(t, events.FolderCreate, lookup.NewItem{Name: "Inbox"})

	var found []lookup.Item
	eventually(t, "testCreateAndDeleteFolder", func() bool {
		found, _ = et.consumer.Folders.List(context.Background())
		return len(found) == 1
	})

	et.send(t, events.FolderDelete, map[string]string{"id": found[0].ID})
	eventually(t, "testCreateAndDeleteFolder", func() bool {
		count, _ := et.consumer.Folders.Count(context.Background())
		return count == 0
	})
}

func (et *EventTests) testCreateTag(t *testing.T) {
	et.send(t, events.TagCreate, lookup.NewItem{Name: "feral"})

	eventually(t, "testCreateTag", func() bool {
		count, _ := et.consumer.Tags.Count(context.Background())
		return count == 1
	})
}

func (et *EventTests) testInvalidEvents(t *testing.T) {
	ctx := context.Background()

	if err := et.consumer.Handle(ctx, []byte("not json")); err == nil {
		t.Fatal("Test testInvalidEvents: should reject a malformed body")
	}
	if err := et.consumer.Handle(ctx, []byte(`{"type":"note.archive","data":{}}`)); err == nil {
		t.Fatal("Test testInvalidEvents: should reject an unknown type")
	}
	if err := et.consumer.Handle(ctx, []byte(`{"type":"note.create","data":{"content":"no title"}}`)); err == nil {
		t.Fatal("Test testInvalidEvents: should reject a note without title")
	}
	if err := et.consumer.Handle(ctx, []byte(`{"type":"tag.create","data":{"name":"feral"}}`)); err == nil {
		t.Fatal("Test testInvalidEvents: should reject a duplicate tag")
	}
	if err := et.consumer.Handle(ctx, []byte(`{"type":"tag.delete","data":{"id":"000000000000000000000000"}}`)); err != nil {
		t.Fatalf("Test testInvalidEvents: deleting a missing tag should succeed: %s", err)
	}

	count, _ := et.consumer.Notes.Count(ctx, note.Filter{})
	if count != 1 {
		t.Fatalf("Test testInvalidEvents: should not have created notes from invalid events: %d", count)
	}
}
