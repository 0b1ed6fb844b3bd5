package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned by ParseField for names that match no person field.
var ErrUnknownField = errors.New("unknown person field")

// Field identifies one of the five logical person fields.
type Field string

const (
	FieldName          Field = "name"
	FieldFavoriteFood  Field = "favorite_food"
	FieldFavoriteMovie Field = "favorite_movie"
	FieldRunDate       Field = "run_date"
	FieldStatus        Field = "status"
)

// ValidFields lists the fields in display order.
var ValidFields = []Field{
	FieldName,
	FieldFavoriteFood,
	FieldFavoriteMovie,
	FieldRunDate,
	FieldStatus,
}

// IsValid returns true if the field is recognized.
func (f Field) IsValid() bool {
	for _, v := range ValidFields {
		if f == v {
			return true
		}
	}
	return false
}

// Label returns the human-readable name used in report headers.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldFavoriteFood:
		return "Favorite Food"
	case FieldFavoriteMovie:
		return "Favorite Movie"
	case FieldRunDate:
		return "Date"
	case FieldStatus:
		return "Status"
	default:
		return string(f)
	}
}

// fieldAliases maps normalized spellings to fields.
var fieldAliases = map[string]Field{
	"name":          FieldName,
	"favoritefood":  FieldFavoriteFood,
	"favoritemovie": FieldFavoriteMovie,
	"date":          FieldRunDate,
	"rundate":       FieldRunDate,
	"status":        FieldStatus,
}

// ParseField resolves a field from its label ("Favorite Food"), snake-case
// key ("favorite_food") or camelCase key ("favoriteFood"). Matching ignores
// case, spaces, underscores and hyphens.
func ParseField(name string) (Field, error) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	if f, ok := fieldAliases[normalized]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}
