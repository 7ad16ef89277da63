package notes

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("note not found")
	ErrInvalidInput = errors.New("invalid note input")
)

// IDGenerator returns a new process-wide unique identifier on every call.
type IDGenerator func() string

// RandomID returns a random UUID string.
func RandomID() string {
	return uuid.NewString()
}

// Store is the in-memory collection of notes. Insertion order is kept:
// Create appends, Update replaces in place, Delete preserves the order of the rest.
// All methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	notes []Note
	newID IDGenerator
}

// NewStore builds a Store holding a copy of seed. A nil newID defaults to random UUIDs.
// Every seeded note must have an id, ids must be unique, and the note must pass
// the same validation as Create.
func NewStore(newID IDGenerator, seed []Note) (*Store, error) {
	if newID == nil {
		newID = RandomID
	}
	s := &Store{
		newID: newID,
		notes: make([]Note, 0, len(seed)),
	}

	seen := make(map[string]struct{}, len(seed))
	for i, n := range seed {
		if n.ID == "" {
			return nil, fmt.Errorf("seed note %d: missing id", i)
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("seed note %d: duplicate id %q", i, n.ID)
		}
		if err := validate(NoteInput{Title: n.Title, ListItems: n.ListItems}); err != nil {
			return nil, fmt.Errorf("seed note %q: %w", n.ID, err)
		}
		seen[n.ID] = struct{}{}
		s.notes = append(s.notes, Note{
			ID:        n.ID,
			Title:     n.Title,
			ListItems: s.itemsWithIDs(n.ListItems),
		})
	}
	return s, nil
}

func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n.clone())
	}
	return out
}

func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.locate(id)
	if !ok {
		return Note{}, ErrNotFound
	}
	return s.notes[i].clone(), nil
}

// Create validates in, mints a new id and appends the note to the end of the collection.
func (s *Store) Create(in NoteInput) (Note, error) {
	if err := validate(in); err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		ID:        s.newID(),
		Title:     in.Title,
		ListItems: s.itemsWithIDs(in.ListItems),
	}
	s.notes = append(s.notes, n)
	return n.clone(), nil
}

// Update replaces the note with the given id in place, keeping its id and position.
// A missing id is reported before the payload is validated.
func (s *Store) Update(id string, in NoteInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.locate(id)
	if !ok {
		return ErrNotFound
	}
	if err := validate(in); err != nil {
		return err
	}

	s.notes[i] = Note{
		ID:        id,
		Title:     in.Title,
		ListItems: s.itemsWithIDs(in.ListItems),
	}
	return nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.locate(id)
	if !ok {
		return ErrNotFound
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return nil
}

// Len returns the number of notes currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// locate must be called with s.mu held.
func (s *Store) locate(id string) (int, bool) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// itemsWithIDs copies items, minting ids for entries that arrive without one.
func (s *Store) itemsWithIDs(items []ListItem) []ListItem {
	out := make([]ListItem, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = s.newID()
		}
		out[i] = it
	}
	return out
}
