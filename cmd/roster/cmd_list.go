package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/roster/internal/models"
	"github.com/ajitpratap0/roster/internal/store"
)

func listCmd(seed seedFunc) *cobra.Command {
	var (
		status string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persons, optionally filtered by status and sorted by a field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer := newLogger(cmd)
			defer func() { _ = closer.Close() }()

			st, err := openStore(seed, logger)
			if err != nil {
				return err
			}

			persons, err := selectPersons(st, status, sortBy)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			out := cmd.OutOrStdout()
			for i := range persons {
				fmt.Fprintln(out, persons[i].FormatFull())
			}
			if len(persons) == 0 {
				fmt.Fprintln(out, "No persons found.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only list persons with this exact status")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by field: Name, Favorite Food, Favorite Movie, Date, or Status")
	return cmd
}

// selectPersons filters by status when set, then sorts by sortBy when set.
// Sorting is stable, so filtered persons with equal keys keep store order.
func selectPersons(st store.Store, status, sortBy string) ([]models.Person, error) {
	if sortBy == "" {
		if status == "" {
			return st.All(), nil
		}
		return st.FilterByStatus(models.Status(status)), nil
	}

	sorted, err := store.SortByFieldName(st, sortBy)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return sorted, nil
	}
	out := make([]models.Person, 0, len(sorted))
	for i := range sorted {
		if sorted[i].Status == models.Status(status) {
			out = append(out, sorted[i])
		}
	}
	return out, nil
}
