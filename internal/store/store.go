package store

import (
	"errors"
	"time"

	"github.com/ajitpratap0/roster/internal/models"
)

var (
	// ErrNotFound is returned by Get when the requested person does not exist.
	ErrNotFound = errors.New("person not found")

	// ErrEmptyStore is returned by New when the seed holds no persons.
	ErrEmptyStore = errors.New("invalid initial data: no persons")

	// ErrAlreadyAnnotated is returned by AnnotateRunDate on every call after the first.
	ErrAlreadyAnnotated = errors.New("run date already annotated")
)

// Store defines the operations over the person record store.
// Every slice returned is a copy; mutating it never affects the store.
type Store interface {
	// AnnotateRunDate stamps every person with now. It succeeds once.
	AnnotateRunDate(now time.Time) error

	// All returns every person in store order.
	All() []models.Person

	// Len returns the number of persons held.
	Len() int

	// Get retrieves a single person by ID.
	Get(id string) (*models.Person, error)

	// FilterByStatus returns the persons whose status equals status exactly,
	// in store order. No match yields an empty slice.
	FilterByStatus(status models.Status) []models.Person

	// SortByField returns all persons ordered ascending by field.
	// Equal values keep their store order.
	SortByField(field models.Field) ([]models.Person, error)

	// Stats returns summary statistics.
	Stats() *models.PersonStats
}

// SortByFieldName resolves name with models.ParseField and sorts by it.
func SortByFieldName(st Store, name string) ([]models.Person, error) {
	field, err := models.ParseField(name)
	if err != nil {
		return nil, err
	}
	return st.SortByField(field)
}
