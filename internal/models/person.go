package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the activity status of a person. Any string is accepted;
// the constants below are the values the default seed uses.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// ValidStatuses is the set of well-known statuses.
var ValidStatuses = []Status{
	StatusActive,
	StatusInactive,
}

// IsValid returns true if the status is one of the well-known values.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// RunDateLayout renders run dates as ISO-8601 UTC with millisecond precision.
const RunDateLayout = "2006-01-02T15:04:05.000Z"

// undefinedValue is printed in place of a run date that has not been set.
const undefinedValue = "undefined"

// personNamespace seeds the name-based person IDs.
var personNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("roster.person"))

// Person is one record of the roster.
type Person struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	FavoriteFood  string     `json:"favorite_food" yaml:"favorite_food"`
	FavoriteMovie string     `json:"favorite_movie" yaml:"favorite_movie"`
	Status        Status     `json:"status" yaml:"status"`
	RunDate       *time.Time `json:"run_date,omitempty" yaml:"run_date,omitempty"` // nil until annotated
}

// NewPerson builds a person with no run date. The ID is derived from the
// supplied fields, so building the same person twice yields the same ID.
func NewPerson(name, favoriteFood, favoriteMovie string, status Status) Person {
	key := strings.Join([]string{name, favoriteFood, favoriteMovie, string(status)}, "\x00")
	return Person{
		ID:            uuid.NewSHA1(personNamespace, []byte(key)).String(),
		Name:          name,
		FavoriteFood:  favoriteFood,
		FavoriteMovie: favoriteMovie,
		Status:        status,
	}
}

// SetRunDate stamps the person with t in UTC.
func (p *Person) SetRunDate(t time.Time) {
	utc := t.UTC()
	p.RunDate = &utc
}

// RunDateString returns the formatted run date, or "" and false when unset.
func (p Person) RunDateString() (string, bool) {
	if p.RunDate == nil {
		return "", false
	}
	return p.RunDate.UTC().Format(RunDateLayout), true
}

// Value returns the string value of field f. ok is false when the value is
// absent, which only happens for the run date before annotation.
func (p Person) Value(f Field) (value string, ok bool) {
	switch f {
	case FieldName:
		return p.Name, true
	case FieldFavoriteFood:
		return p.FavoriteFood, true
	case FieldFavoriteMovie:
		return p.FavoriteMovie, true
	case FieldRunDate:
		return p.RunDateString()
	case FieldStatus:
		return string(p.Status), true
	default:
		return "", false
	}
}

// FormatMinimal renders name, run date and favorite movie on one line.
func (p Person) FormatMinimal() string {
	return fmt.Sprintf("Name: %s, Date: %s, Favorite Movie: %s", p.Name, p.runDateOrUndefined(), p.FavoriteMovie)
}

// FormatFull renders all five fields on one line.
func (p Person) FormatFull() string {
	return fmt.Sprintf("Name: %s, Favorite Food: %s, Favorite Movie: %s, Date: %s, Status: %s",
		p.Name, p.FavoriteFood, p.FavoriteMovie, p.runDateOrUndefined(), p.Status)
}

func (p Person) runDateOrUndefined() string {
	if s, ok := p.RunDateString(); ok {
		return s
	}
	return undefinedValue
}

// PersonStats holds summary statistics about the roster.
type PersonStats struct {
	TotalPersons int64            `json:"total_persons"`
	ByStatus     map[string]int64 `json:"by_status"`
	Annotated    bool             `json:"annotated"`
}
