package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ribgsilva/noteful-api/business/v1/note"
)

var _ note.Store = (*NoteStore)(nil)

type NoteStore struct {
	mu    sync.RWMutex
	notes map[string]note.Note
}

func NewNoteStore() *NoteStore {
	return &NoteStore{notes: make(map[string]note.Note)}
}

func (s *NoteStore) Find(_ context.Context, f note.Filter) ([]note.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]note.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if matches(n, f) {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}

func (s *NoteStore) FindByID(_ context.Context, id string) (note.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[strings.ToLower(id)]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}
	return n, nil
}

func (s *NoteStore) Create(_ context.Context, newN note.NewNote) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(newN), nil
}

func (s *NoteStore) FindByIDAndUpdate(_ context.Context, id string, u note.UpdateNote) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = strings.ToLower(id)
	n, ok := s.notes[id]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	n.UpdatedAt = touch(n.UpdatedAt)
	s.notes[id] = n
	return n, nil
}

func (s *NoteStore) FindByIDAndRemove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = strings.ToLower(id)
	if _, ok := s.notes[id]; !ok {
		return note.ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

func (s *NoteStore) InsertMany(_ context.Context, batch []note.NewNote) ([]note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := make([]note.Note, 0, len(batch))
	for _, newN := range batch {
		notes = append(notes, s.insert(newN))
	}
	return notes, nil
}

func (s *NoteStore) Count(ctx context.Context, f note.Filter) (int64, error) {
	notes, err := s.Find(ctx, f)
	if err != nil {
		return 0, err
	}
	return int64(len(notes)), nil
}

// insert requires s.mu held for writing.
func (s *NoteStore) insert(newN note.NewNote) note.Note {
	t := now()
	n := note.Note{
		ID:        newID(),
		Title:     newN.Title,
		Content:   newN.Content,
		CreatedAt: t,
		UpdatedAt: t,
	}
	s.notes[n.ID] = n
	return n
}

func matches(n note.Note, f note.Filter) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		return strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term)
	}
	if f.Title != "" && n.Title != f.Title {
		return false
	}
	if f.Content != "" && n.Content != f.Content {
		return false
	}
	return true
}
