package store

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ajitpratap0/roster/internal/metrics"
	"github.com/ajitpratap0/roster/internal/models"
)

// MemoryStore is the in-memory implementation of Store.
type MemoryStore struct {
	mu        sync.RWMutex
	persons   []models.Person
	annotated bool
	metrics   *metrics.Metrics
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithMetrics records store operations into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *MemoryStore) {
		s.metrics = m
	}
}

// New creates a store seeded with a copy of persons.
// It returns ErrEmptyStore when persons is empty.
func New(persons []models.Person, opts ...Option) (*MemoryStore, error) {
	if len(persons) == 0 {
		return nil, ErrEmptyStore
	}
	s := &MemoryStore{persons: clonePersons(persons)}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.SetLoaded(len(s.persons))
	return s, nil
}

// AnnotateRunDate stamps every person with the same instant.
func (s *MemoryStore) AnnotateRunDate(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.annotated {
		return ErrAlreadyAnnotated
	}
	for i := range s.persons {
		s.persons[i].SetRunDate(now)
	}
	s.annotated = true
	s.metrics.AddAnnotated(len(s.persons))
	return nil
}

// All returns every person in store order.
func (s *MemoryStore) All() []models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePersons(s.persons)
}

// Len returns the number of persons.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.persons)
}

// Get retrieves a single person by ID.
func (s *MemoryStore) Get(id string) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.persons {
		if s.persons[i].ID == id {
			p := clonePerson(s.persons[i])
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FilterByStatus returns persons whose status matches exactly.
func (s *MemoryStore) FilterByStatus(status models.Status) []models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.metrics.IncFilter()

	out := make([]models.Person, 0, len(s.persons))
	for i := range s.persons {
		if s.persons[i].Status == status {
			out = append(out, clonePerson(s.persons[i]))
		}
	}
	return out
}

// SortByField returns a stable, ascending copy ordered by field.
func (s *MemoryStore) SortByField(field models.Field) ([]models.Person, error) {
	if !field.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownField, string(field))
	}

	s.mu.RLock()
	out := clonePersons(s.persons)
	s.mu.RUnlock()
	s.metrics.IncSort(string(field))

	slices.SortStableFunc(out, func(a, b models.Person) int {
		return compareField(a, b, field)
	})
	return out, nil
}

// Stats returns the store size, counts by status, and annotation state.
func (s *MemoryStore) Stats() *models.PersonStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.PersonStats{
		TotalPersons: int64(len(s.persons)),
		ByStatus:     make(map[string]int64),
		Annotated:    s.annotated,
	}
	for i := range s.persons {
		stats.ByStatus[string(s.persons[i].Status)]++
	}
	return stats
}

// --- helpers ---

// compareField orders by byte-wise string comparison. An absent value
// equals another absent value and sorts before any present one.
func compareField(a, b models.Person, field models.Field) int {
	av, aok := a.Value(field)
	bv, bok := b.Value(field)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return strings.Compare(av, bv)
}

func clonePersons(in []models.Person) []models.Person {
	out := make([]models.Person, len(in))
	for i := range in {
		out[i] = clonePerson(in[i])
	}
	return out
}

// clonePerson copies p so the run date pointer is not shared.
func clonePerson(p models.Person) models.Person {
	if p.RunDate != nil {
		t := *p.RunDate
		p.RunDate = &t
	}
	return p
}
