package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
)

var _ lookup.Store = (*LookupStore)(nil)

// LookupStore keeps one unique-name collection.
type LookupStore struct {
	mu    sync.RWMutex
	items map[string]lookup.Item
}

func NewLookupStore() *LookupStore {
	return &LookupStore{items: make(map[string]lookup.Item)}
}

func (s *LookupStore) Find(_ context.Context) ([]lookup.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]lookup.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name > items[j].Name })
	return items, nil
}

func (s *LookupStore) FindByID(_ context.Context, id string) (lookup.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[strings.ToLower(id)]
	if !ok {
		return lookup.Item{}, lookup.ErrNotFound
	}
	return item, nil
}

func (s *LookupStore) Create(_ context.Context, newI lookup.NewItem) (lookup.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(newI.Name, "") {
		return lookup.Item{}, lookup.ErrDuplicateName
	}
	return s.insert(newI), nil
}

func (s *LookupStore) FindByIDAndUpdate(_ context.Context, id string, u lookup.UpdateItem) (lookup.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = strings.ToLower(id)
	item, ok := s.items[id]
	if !ok {
		return lookup.Item{}, lookup.ErrNotFound
	}
	if s.nameTaken(u.Name, id) {
		return lookup.Item{}, lookup.ErrDuplicateName
	}
	item.Name = u.Name
	item.UpdatedAt = touch(item.UpdatedAt)
	s.items[id] = item
	return item, nil
}

func (s *LookupStore) FindByIDAndRemove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = strings.ToLower(id)
	if _, ok := s.items[id]; !ok {
		return lookup.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// InsertMany is all or nothing: a repeated name rejects the whole batch.
func (s *LookupStore) InsertMany(_ context.Context, batch []lookup.NewItem) ([]lookup.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(batch))
	for _, newI := range batch {
		if _, dup := seen[newI.Name]; dup || s.nameTaken(newI.Name, "") {
			return nil, lookup.ErrDuplicateName
		}
		seen[newI.Name] = struct{}{}
	}

	items := make([]lookup.Item, 0, len(batch))
	for _, newI := range batch {
		items = append(items, s.insert(newI))
	}
	return items, nil
}

func (s *LookupStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.items)), nil
}

// nameTaken requires s.mu held.
func (s *LookupStore) nameTaken(name, exceptID string) bool {
	for id, item := range s.items {
		if item.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

// insert requires s.mu held for writing.
func (s *LookupStore) insert(newI lookup.NewItem) lookup.Item {
	t := now()
	item := lookup.Item{
		ID:        newID(),
		Name:      newI.Name,
		CreatedAt: t,
		UpdatedAt: t,
	}
	s.items[item.ID] = item
	return item
}
