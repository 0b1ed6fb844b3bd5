// Package export renders persons as JSON, CSV or YAML.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/roster/internal/models"
)

// ErrUnsupportedFormat is returned by Write for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formats lists the accepted format names.
var Formats = []string{"json", "csv", "yaml"}

// record is the flat, format-independent shape of an exported person.
type record struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	FavoriteFood  string `json:"favorite_food" yaml:"favorite_food"`
	FavoriteMovie string `json:"favorite_movie" yaml:"favorite_movie"`
	Status        string `json:"status" yaml:"status"`
	RunDate       string `json:"run_date" yaml:"run_date"`
}

var csvHeader = []string{"id", "name", "favorite_food", "favorite_movie", "status", "run_date"}

func toRecords(persons []models.Person) []record {
	out := make([]record, 0, len(persons))
	for i := range persons {
		p := &persons[i]
		runDate, _ := p.RunDateString()
		out = append(out, record{
			ID:            p.ID,
			Name:          p.Name,
			FavoriteFood:  p.FavoriteFood,
			FavoriteMovie: p.FavoriteMovie,
			Status:        string(p.Status),
			RunDate:       runDate,
		})
	}
	return out
}

// Write renders persons to w in format. An unset run date is exported as "".
func Write(w io.Writer, persons []models.Person, format string) error {
	records := toRecords(persons)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("export: encoding JSON: %w", err)
		}
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("export: writing CSV header: %w", err)
		}
		for _, r := range records {
			row := []string{r.ID, r.Name, r.FavoriteFood, r.FavoriteMovie, r.Status, r.RunDate}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("export: writing CSV row: %w", err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("export: flushing CSV: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("export: encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("export: closing YAML encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w %q (use json, csv or yaml)", ErrUnsupportedFormat, format)
	}
	return nil
}
