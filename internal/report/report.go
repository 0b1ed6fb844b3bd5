// Package report writes the roster console report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/ajitpratap0/roster/internal/models"
	"github.com/ajitpratap0/roster/internal/store"
)

// Options selects the filter status and the sort sections of a report.
type Options struct {
	Status     models.Status
	SortFields []models.Field
}

// DefaultOptions reports active persons, then sorts by name and by status.
func DefaultOptions() Options {
	return Options{
		Status:     models.StatusActive,
		SortFields: []models.Field{models.FieldName, models.FieldStatus},
	}
}

// Reporter renders store views to a writer.
type Reporter struct {
	st     store.Store
	out    io.Writer
	logger *slog.Logger
}

// New creates a Reporter writing to out.
func New(st store.Store, out io.Writer, logger *slog.Logger) *Reporter {
	return &Reporter{
		st:     st,
		out:    out,
		logger: logger,
	}
}

// Write prints the filtered section, one sorted section per field, and the
// closing line.
func (r *Reporter) Write(opts Options) error {
	w := bufio.NewWriter(r.out)

	fmt.Fprintf(w, "List of %s Persons:\n", opts.Status)
	matched := r.st.FilterByStatus(opts.Status)
	r.logger.Debug("report: filtered persons", "status", opts.Status, "count", len(matched))
	if len(matched) > 0 {
		for i := range matched {
			fmt.Fprintln(w, matched[i].FormatMinimal())
		}
	} else {
		fmt.Fprintf(w, "No '%s' persons found!\n", opts.Status)
	}

	for _, field := range opts.SortFields {
		sorted, err := r.st.SortByField(field)
		if err != nil {
			return fmt.Errorf("report: sorting by %s: %w", field, err)
		}
		r.logger.Debug("report: sorted persons", "field", field, "count", len(sorted))

		fmt.Fprintf(w, "\nList of Sorted Persons By %s:\n", field.Label())
		for i := range sorted {
			fmt.Fprintln(w, sorted[i].FormatFull())
		}
	}

	fmt.Fprint(w, "\nDone!\n\n")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("report: writing output: %w", err)
	}
	return nil
}
