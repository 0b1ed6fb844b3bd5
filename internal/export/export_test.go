package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/roster/internal/export"
	"github.com/ajitpratap0/roster/internal/models"
	"github.com/ajitpratap0/roster/internal/store"
)

func annotatedPersons(t *testing.T) []models.Person {
	t.Helper()
	s, err := store.New(store.DefaultPersons())
	require.NoError(t, err)
	require.NoError(t, s.AnnotateRunDate(time.Date(2023, 6, 14, 10, 0, 0, 0, time.UTC)))
	return s.All()
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, annotatedPersons(t), "json"))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 5)
	assert.Equal(t, "Rocky", got[0]["name"])
	assert.Equal(t, "Back to The Future", got[0]["favorite_movie"])
	assert.Equal(t, "2023-06-14T10:00:00.000Z", got[0]["run_date"])
	assert.NotEmpty(t, got[0]["id"])
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, annotatedPersons(t), "csv"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"id", "name", "favorite_food", "favorite_movie", "status", "run_date"}, rows[0])
	assert.Equal(t, "Donny", rows[3][1])
	assert.Equal(t, "Singapore chow mei fun", rows[3][2])
	assert.Equal(t, "Inactive", rows[3][4])
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, annotatedPersons(t), "yaml"))

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 5)
	assert.Equal(t, "Alex", got[4]["name"])
	assert.Equal(t, "Active", got[4]["status"])
}

func TestWrite_UnsetRunDate(t *testing.T) {
	var buf bytes.Buffer
	persons := []models.Person{models.NewPerson("Matt", "Brisket Tacos", "The Princess Bride", models.StatusActive)}
	require.NoError(t, export.Write(&buf, persons, "json"))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "", got[0]["run_date"])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, annotatedPersons(t), "xml")
	assert.True(t, errors.Is(err, export.ErrUnsupportedFormat))
	assert.Zero(t, buf.Len())
}
