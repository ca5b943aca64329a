package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ribgsilva/noteful-api/business/v1/note"
)

type NoteTests struct {
	app
}

func TestNote(t *testing.T) {
	tests := NoteTests{newApp(t)}

	// =======================================================================================================
	// Run tests

	tests.listNotes200(t)
	tests.searchNotes200(t)
	tests.filterNotes200(t)
	tests.getNote200(t)
	tests.getNote400(t)
	tests.getNote404(t)
	tests.createNote201(t)
	tests.createNote400(t)
	tests.updateNote204(t)
	tests.updateNoteUppercaseID204(t)
	tests.updateNote400(t)
	tests.updateNote404(t)
	tests.deleteNote204(t)
}

func (nt *NoteTests) first(t *testing.T) note.Note {
	notes, err := nt.cores.Notes.List(context.Background(), note.Filter{})
	if err != nil || len(notes) == 0 {
		t.Fatalf("Test setup: Should have seeded notes: %v", err)
	}
	return notes[0]
}

func (nt *NoteTests) listNotes200(t *testing.T) {
	data, err := nt.cores.Notes.List(context.Background(), note.Filter{})
	if err != nil {
		t.Fatal(err)
	}

	w := nt.do(http.MethodGet, "/api/notes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test listNotes200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp []json.RawMessage
	decode(t, "listNotes200", w, &resp)
	if len(resp) != len(data) {
		t.Fatalf("Test listNotes200: Should have received %d notes: %d", len(data), len(resp))
	}
	for i, raw := range resp {
		k := keys(t, "listNotes200", raw)
		for _, want := range []string{"id", "title", "content", "createdAt", "updatedAt"} {
			if !k[want] {
				t.Fatalf("Test listNotes200: Should have received %q in note %d: %s", want, i, raw)
			}
		}
		if k["_id"] || k["__v"] {
			t.Fatalf("Test listNotes200: Should not expose store fields in note %d: %s", i, raw)
		}
		var n note.Note
		_ = json.Unmarshal(raw, &n)
		if n.ID != data[i].ID || !n.CreatedAt.Equal(data[i].CreatedAt) || !n.UpdatedAt.Equal(data[i].UpdatedAt) {
			t.Fatalf("Test listNotes200: Should have received %v at %d: %v", data[i], i, n)
		}
	}
}

func (nt *NoteTests) searchNotes200(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes?searchTerm=GOVERNMENT", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test searchNotes200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp []note.Note
	decode(t, "searchNotes200", w, &resp)
	if len(resp) != 1 || resp[0].Title != "What the government doesn't want you to know about cats" {
		t.Fatalf("Test searchNotes200: Should have received the government note: %v", resp)
	}

	// matches content as well as title
	w = nt.do(http.MethodGet, "/api/notes?searchTerm=sollicitudin", nil)
	decode(t, "searchNotes200", w, &resp)
	if len(resp) != 2 {
		t.Fatalf("Test searchNotes200: Should have received 2 notes matching content: %v", resp)
	}

	w = nt.do(http.MethodGet, "/api/notes?searchTerm=nothing-matches-this", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test searchNotes200: Should receive a status code of 200 for an empty result : %v", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("Test searchNotes200: Should have received an empty array: %s", body)
	}
}

func (nt *NoteTests) filterNotes200(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes?title=5%20life%20lessons%20learned%20from%20cats", nil)
	var resp []note.Note
	decode(t, "filterNotes200", w, &resp)
	if len(resp) != 1 {
		t.Fatalf("Test filterNotes200: Should have received 1 note for an exact title: %v", resp)
	}

	w = nt.do(http.MethodGet, "/api/notes?title=5%20life", nil)
	decode(t, "filterNotes200", w, &resp)
	if len(resp) != 0 {
		t.Fatalf("Test filterNotes200: Should not match a partial exact title: %v", resp)
	}
}

func (nt *NoteTests) getNote200(t *testing.T) {
	data := nt.first(t)

	w := nt.do(http.MethodGet, "/api/notes/"+data.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test getNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp note.Note
	decode(t, "getNote200", w, &resp)
	if resp.ID != data.ID {
		t.Fatalf("Test getNote200: Should have received %q as id in the response: %v", data.ID, resp)
	}
	if resp.Title != data.Title {
		t.Fatalf("Test getNote200: Should have received %q as title in the response: %v", data.Title, resp)
	}
	if !resp.CreatedAt.Equal(data.CreatedAt) || !resp.UpdatedAt.Equal(data.UpdatedAt) {
		t.Fatalf("Test getNote200: Should have received the stored timestamps: %v", resp)
	}
}

func (nt *NoteTests) getNote400(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes/NOT-A-VALID-ID", nil)
	expectMessage(t, "getNote400", w, http.StatusBadRequest, "The `id` is not valid")
}

func (nt *NoteTests) getNote404(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes/"+missingID, nil)
	expectMessage(t, "getNote404", w, http.StatusNotFound, "Not Found")
}

func (nt *NoteTests) createNote201(t *testing.T) {
	w := nt.do(http.MethodPost, "/api/notes", map[string]string{"title": "Cats!", "content": "meow"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test createNote201: Should receive a status code of 201 for the response : %v", w.Code)
	}

	var resp note.Note
	decode(t, "createNote201", w, &resp)
	if loc := w.Header().Get("Location"); loc != "/api/notes/"+resp.ID {
		t.Fatalf("Test createNote201: Should have received the note location: %q", loc)
	}
	if resp.CreatedAt.IsZero() || resp.UpdatedAt.IsZero() {
		t.Fatalf("Test createNote201: Should have received timestamps: %v", resp)
	}

	data, err := nt.cores.Notes.Find(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("Test createNote201: Should find the created note: %v", err)
	}
	if data.Title != "Cats!" || data.Content != "meow" || !data.CreatedAt.Equal(resp.CreatedAt) {
		t.Fatalf("Test createNote201: Should have stored the response note: %v != %v", data, resp)
	}
}

func (nt *NoteTests) createNote400(t *testing.T) {
	w := nt.do(http.MethodPost, "/api/notes", map[string]string{"content": "no title"})
	expectMessage(t, "createNote400", w, http.StatusBadRequest, "Missing `title` in request body")

	// a non-string title counts as missing
	w = nt.do(http.MethodPost, "/api/notes", map[string]any{"title": 42})
	expectMessage(t, "createNote400", w, http.StatusBadRequest, "Missing `title` in request body")
}

func (nt *NoteTests) updateNote204(t *testing.T) {
	orig := nt.first(t)

	w := nt.do(http.MethodPut, "/api/notes/"+orig.ID, map[string]string{
		"id":        orig.ID,
		"title":     "Updated title",
		"createdAt": "1999-01-01T00:00:00Z",
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test updateNote204: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("Test updateNote204: Should receive no body: %s", w.Body.String())
	}

	data, err := nt.cores.Notes.Find(context.Background(), orig.ID)
	if err != nil {
		t.Fatal(err)
	}
	if data.Title != "Updated title" {
		t.Fatalf("Test updateNote204: Should have updated the title: %v", data)
	}
	if data.Content != orig.Content {
		t.Fatalf("Test updateNote204: Should have kept the content: %v", data)
	}
	if !data.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatalf("Test updateNote204: Should ignore non updatable fields: %v", data)
	}
	if !data.UpdatedAt.After(orig.UpdatedAt) {
		t.Fatalf("Test updateNote204: Should have moved updatedAt forward: %v <= %v", data.UpdatedAt, orig.UpdatedAt)
	}
}

func (nt *NoteTests) updateNoteUppercaseID204(t *testing.T) {
	orig := nt.first(t)

	w := nt.do(http.MethodPut, "/api/notes/"+strings.ToUpper(orig.ID), map[string]string{
		"id":      orig.ID,
		"content": "Updated through an uppercase id",
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test updateNoteUppercaseID204: Should receive a status code of 204 for the response : %v", w.Code)
	}

	data, err := nt.cores.Notes.Find(context.Background(), orig.ID)
	if err != nil {
		t.Fatal(err)
	}
	if data.Content != "Updated through an uppercase id" {
		t.Fatalf("Test updateNoteUppercaseID204: Should have updated the content: %v", data)
	}
}

func (nt *NoteTests) updateNote400(t *testing.T) {
	orig := nt.first(t)

	w := nt.do(http.MethodPut, "/api/notes/NOT-A-VALID-ID", map[string]string{"id": "NOT-A-VALID-ID", "title": "x"})
	expectMessage(t, "updateNote400", w, http.StatusBadRequest, "The `id` is not valid")

	w = nt.do(http.MethodPut, "/api/notes/NOT-A-VALID-ID", map[string]string{})
	expectMessage(t, "updateNote400", w, http.StatusBadRequest, "The `id` is not valid")

	w = nt.do(http.MethodPut, "/api/notes/"+orig.ID, map[string]string{"title": "x"})
	expectMessage(t, "updateNote400", w, http.StatusBadRequest, note.MsgIDMismatch)

	w = nt.do(http.MethodPut, "/api/notes/"+orig.ID, map[string]string{"id": missingID, "title": "x"})
	expectMessage(t, "updateNote400", w, http.StatusBadRequest, note.MsgIDMismatch)

	w = nt.do(http.MethodPut, "/api/notes/"+orig.ID, map[string]string{"id": orig.ID, "title": ""})
	expectMessage(t, "updateNote400", w, http.StatusBadRequest, "Missing `title` in request body")
}

func (nt *NoteTests) updateNote404(t *testing.T) {
	w := nt.do(http.MethodPut, "/api/notes/"+missingID, map[string]string{"id": missingID, "title": "x"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test updateNote404: Should receive a status code of 404 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) deleteNote204(t *testing.T) {
	data := nt.first(t)

	for i := 0; i < 2; i++ {
		w := nt.do(http.MethodDelete, "/api/notes/"+data.ID, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("Test deleteNote204: Should receive a status code of 204 for attempt %d : %v", i, w.Code)
		}
	}

	count, err := nt.cores.Notes.Count(context.Background(), note.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	w := nt.do(http.MethodGet, "/api/notes", nil)
	var resp []note.Note
	decode(t, "deleteNote204", w, &resp)
	if int64(len(resp)) != count {
		t.Fatalf("Test deleteNote204: Should list %d notes: %d", count, len(resp))
	}
	for _, n := range resp {
		if n.ID == data.ID {
			t.Fatalf("Test deleteNote204: Should have removed note %s", data.ID)
		}
	}

	w = nt.do(http.MethodDelete, "/api/notes/NOT-A-VALID-ID", nil)
	expectMessage(t, "deleteNote204", w, http.StatusBadRequest, "The `id` is not valid")
}
