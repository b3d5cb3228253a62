package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, name, date, start, end string) Event {
	t.Helper()
	e, err := New(name, date, start, end)
	require.NoError(t, err)
	return e
}

func TestNew_NormalizesName(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lower case words", raw: "Examen de programación", want: "Examen De Programación"},
		{name: "surrounding spaces", raw: "   baluarte Pamplona negra   ", want: "Baluarte Pamplona Negra"},
		{name: "single word", raw: " peluquería   ", want: "Peluquería"},
		{name: "upper case remainder", raw: "COMIDA restaurante EUROPA", want: "Comida Restaurante Europa"},
		{name: "inner whitespace collapsed", raw: "recoger \t abrigo   en tintorería", want: "Recoger Abrigo En Tintorería"},
		{name: "hyphen stays inside the word", raw: "cena pre-examen", want: "Cena Pre-examen"},
		{name: "leading digit", raw: "3d printing", want: "3d Printing"},
		{name: "slash stays inside the word", raw: "reunión x/y", want: "Reunión X/y"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := mustNew(t, tc.raw, "03/02/2021", "11:45", "13:20")
			assert.Equal(t, tc.want, e.Name())
		})
	}
}

func TestNew_TrimsFields(t *testing.T) {
	e := mustNew(t, "Examen", " 03/02/2021 ", " 11:45", "13:20 ")

	assert.Equal(t, time.Date(2021, 2, 3, 0, 0, 0, 0, time.UTC), e.Date())
	assert.Equal(t, time.Date(2021, 2, 3, 11, 45, 0, 0, time.UTC), e.Start())
	assert.Equal(t, time.Date(2021, 2, 3, 13, 20, 0, 0, time.UTC), e.End())
	assert.NotEmpty(t, e.UID())
}

func TestNew_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr error
	}{
		{name: "bad date", date: "2021-02-03", start: "10:00", end: "11:00", wantErr: ErrInvalidDate},
		{name: "impossible date", date: "31/02/2021", start: "10:00", end: "11:00", wantErr: ErrInvalidDate},
		{name: "bad start", date: "03/02/2021", start: "10h", end: "11:00", wantErr: ErrInvalidTime},
		{name: "bad end", date: "03/02/2021", start: "10:00", end: "25:00", wantErr: ErrInvalidTime},
		{name: "end before start", date: "03/02/2021", start: "10:00", end: "09:59", wantErr: ErrEndBeforeStart},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("Event", tc.date, tc.start, tc.end)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEvent_Weekday(t *testing.T) {
	testCases := []struct {
		date string
		want int
	}{
		{date: "01/02/2021", want: 1},
		{date: "03/02/2021", want: 3},
		{date: "13/03/2021", want: 6},
		{date: "30/05/2021", want: 7},
	}
	for _, tc := range testCases {
		t.Run(tc.date, func(t *testing.T) {
			e := mustNew(t, "Event", tc.date, "10:00", "11:00")
			assert.Equal(t, tc.want, e.Weekday())
		})
	}
}

func TestEvent_MonthAndDuration(t *testing.T) {
	e := mustNew(t, "Comida restaurante europa", "22/05/2021", "12:00", "17:00")

	assert.Equal(t, time.May, e.Month())
	assert.Equal(t, 300, e.DurationMinutes())

	empty := mustNew(t, "Instant", "22/05/2021", "12:00", "12:00")
	assert.Equal(t, 0, empty.DurationMinutes())
}

func TestEvent_Before(t *testing.T) {
	first := mustNew(t, "Peluquería", "29/05/2021", "10:20", "12:00")
	second := mustNew(t, "Baluarte", "29/05/2021", "17:00", "21:00")
	earlierDay := mustNew(t, "Comida", "22/05/2021", "18:00", "19:00")
	sameStart := mustNew(t, "Other", "29/05/2021", "10:20", "11:00")

	assert.True(t, first.Before(second))
	assert.False(t, second.Before(first))
	assert.True(t, earlierDay.Before(first), "date is compared before start time")
	assert.False(t, first.Before(sameStart))
	assert.False(t, sameStart.Before(first))
	assert.False(t, first.Before(first))
}

func TestEvent_String(t *testing.T) {
	e := mustNew(t, "examen de programación", "03/02/2021", "11:45", "13:20")

	want := "    Name: Examen De Programación (Weekday 3)\n" +
		"    Date: 03/02/2021\tStart: 11:45         End: 13:20 (95')\n" +
		"------------------------------------------------------\n"
	assert.Equal(t, want, e.String())
}
