package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `# name, date, start, end
Examen de programación,03/02/2021,11:45,13:20
Recoger abrigo en tintorería, 13/03/2021, 09:30, 10:00

   baluarte Pamplona negra   ,29/05/2021,17:00,21:00
`

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Name: "Examen de programación", Date: "03/02/2021", Start: "11:45", End: "13:20"},
		{Name: "Recoger abrigo en tintorería", Date: "13/03/2021", Start: "09:30", End: "10:00"},
		{Name: "baluarte Pamplona negra   ", Date: "29/05/2021", Start: "17:00", End: "21:00"},
	}, records)
}

func TestParseCSV_WrongFieldCount(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Examen,03/02/2021,11:45\n"))
	assert.Error(t, err)
}

func TestCSVSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	events, err := Events(context.Background(), NewCSVSource(path))
	require.NoError(t, err)

	assert.Len(t, events, 3)
	assert.Equal(t, "Baluarte Pamplona Negra", events[2].Name())
}

func TestCSVSource_Missing(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotFound)
}
