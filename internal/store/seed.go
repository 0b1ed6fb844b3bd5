package store

import "github.com/ajitpratap0/roster/internal/models"

// DefaultPersons returns the built-in seed in its fixed order.
// Each call returns a new slice with identical contents.
func DefaultPersons() []models.Person {
	return []models.Person{
		models.NewPerson("Rocky", "Sushi", "Back to The Future", models.StatusInactive),
		models.NewPerson("Miroslav", "Sushi", "American Psycho", models.StatusActive),
		models.NewPerson("Donny", "Singapore chow mei fun", "The Princess Bride", models.StatusInactive),
		models.NewPerson("Matt", "Brisket Tacos", "The Princess Bride", models.StatusActive),

		// Added after the first four.
		models.NewPerson("Alex", "Tacos", "Cinema Paradiso", models.StatusActive),
	}
}
