package calendar

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/klokku/agenda/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(t *testing.T, name, date, start, end string) event.Event {
	t.Helper()
	e, err := event.New(name, date, start, end)
	require.NoError(t, err)
	return e
}

// sampleIndex loads the five events of the usual demonstration data set.
func sampleIndex(t *testing.T) *Index {
	idx := NewIndex()
	idx.Add(newEvent(t, "Examen de programación", "03/02/2021", "11:45", "13:20"))
	idx.Add(newEvent(t, "Recoger abrigo en tintorería", "13/03/2021", "09:30", "10:00"))
	idx.Add(newEvent(t, "   baluarte Pamplona negra   ", "29/05/2021", "17:00", "21:00"))
	idx.Add(newEvent(t, "Comida restaurante europa", "22/05/2021", "12:00", "17:00"))
	idx.Add(newEvent(t, " peluquería   ", "29/05/2021", "10:20", "12:00"))
	return idx
}

func names(events []event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Name())
	}
	return out
}

func TestIndex_Add(t *testing.T) {
	idx := sampleIndex(t)

	assert.Equal(t, []time.Month{time.February, time.March, time.May}, idx.Months())
	assert.Equal(t, 3, idx.CountInMonth(time.May))
	assert.Equal(t, []string{"Comida Restaurante Europa", "Peluquería", "Baluarte Pamplona Negra"}, names(idx.Events(time.May)))
	assert.Equal(t, 5, idx.Len())
}

func TestIndex_Add_InsertPositions(t *testing.T) {
	testCases := []struct {
		name  string
		times []string
		want  []string
	}{
		{name: "ascending", times: []string{"08:00", "09:00", "10:00"}, want: []string{"08:00", "09:00", "10:00"}},
		{name: "descending", times: []string{"10:00", "09:00", "08:00"}, want: []string{"08:00", "09:00", "10:00"}},
		{name: "into the middle", times: []string{"08:00", "10:00", "09:00"}, want: []string{"08:00", "09:00", "10:00"}},
		{name: "before the head", times: []string{"09:00", "10:00", "07:00"}, want: []string{"07:00", "09:00", "10:00"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idx := NewIndex()
			for _, start := range tc.times {
				idx.Add(newEvent(t, start, "10/06/2021", start, "23:00"))
			}
			got := make([]string, 0, len(tc.times))
			for _, e := range idx.Events(time.June) {
				got = append(got, e.Start().Format(event.TimeLayout))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIndex_Add_EqualStartKeepsInsertionOrder(t *testing.T) {
	idx := NewIndex()
	idx.Add(newEvent(t, "first", "10/06/2021", "09:00", "10:00"))
	idx.Add(newEvent(t, "second", "10/06/2021", "09:00", "11:00"))
	idx.Add(newEvent(t, "third", "10/06/2021", "09:00", "09:30"))

	assert.Equal(t, []string{"First", "Second", "Third"}, names(idx.Events(time.June)))
}

func TestIndex_Add_DoesNotDeduplicate(t *testing.T) {
	idx := NewIndex()
	e := newEvent(t, "Same", "10/06/2021", "09:00", "10:00")
	idx.Add(e)
	idx.Add(e)

	assert.Equal(t, 2, idx.CountInMonth(time.June))
}

func TestIndex_Add_KeepsInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	idx := NewIndex()
	added := map[time.Month]int{}

	for i := 0; i < 300; i++ {
		month := time.Month(r.Intn(12) + 1)
		day := r.Intn(28) + 1
		hour := r.Intn(22)
		date := fmt.Sprintf("%02d/%02d/2021", day, month)
		start := fmt.Sprintf("%02d:%02d", hour, r.Intn(60))
		end := fmt.Sprintf("%02d:00", hour+1)
		idx.Add(newEvent(t, "event", date, start, end))
		added[month]++

		for _, m := range idx.Months() {
			events := idx.Events(m)
			require.NotEmpty(t, events)
			for j := 1; j < len(events); j++ {
				require.False(t, events[j].Before(events[j-1]), "month %s out of order at %d", m, j)
			}
		}
	}
	for m := time.January; m <= time.December; m++ {
		assert.Equal(t, added[m], idx.CountInMonth(m), m.String())
	}
}

func TestIndex_CountInMonth_Absent(t *testing.T) {
	idx := sampleIndex(t)

	assert.Equal(t, 0, idx.CountInMonth(time.December))
	assert.Equal(t, 0, NewIndex().CountInMonth(time.January))
}

func TestIndex_BusiestMonths(t *testing.T) {
	testCases := []struct {
		name   string
		dates  []string
		expect []time.Month
	}{
		{name: "empty index", dates: nil, expect: nil},
		{name: "single month", dates: []string{"01/03/2021"}, expect: []time.Month{time.March}},
		{
			name:   "clear winner",
			dates:  []string{"01/01/2021", "01/03/2021", "02/03/2021", "01/07/2021"},
			expect: []time.Month{time.March},
		},
		{
			name:   "tie after a lower month",
			dates:  []string{"01/01/2021", "01/03/2021", "02/03/2021", "01/07/2021", "02/07/2021"},
			expect: []time.Month{time.March, time.July},
		},
		{
			name:   "earlier tie discarded by later maximum",
			dates:  []string{"01/01/2021", "01/02/2021", "01/11/2021", "02/11/2021"},
			expect: []time.Month{time.November},
		},
		{
			name:   "all tied",
			dates:  []string{"01/12/2021", "01/01/2021", "01/06/2021"},
			expect: []time.Month{time.January, time.June, time.December},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idx := NewIndex()
			for _, d := range tc.dates {
				idx.Add(newEvent(t, "event", d, "10:00", "11:00"))
			}
			assert.Equal(t, tc.expect, idx.BusiestMonths())
		})
	}
}

func TestIndex_LongestEvent(t *testing.T) {
	name, ok := sampleIndex(t).LongestEvent()
	assert.True(t, ok)
	assert.Equal(t, "Comida Restaurante Europa", name)
}

func TestIndex_LongestEvent_FirstOfTies(t *testing.T) {
	idx := NewIndex()
	idx.Add(newEvent(t, "C", "20/04/2021", "10:00", "13:20"))
	idx.Add(newEvent(t, "A", "01/02/2021", "10:00", "11:30"))
	idx.Add(newEvent(t, "B", "10/04/2021", "10:00", "13:20"))

	name, ok := idx.LongestEvent()
	assert.True(t, ok)
	assert.Equal(t, "B", name)
}

func TestIndex_LongestEvent_Empty(t *testing.T) {
	name, ok := NewIndex().LongestEvent()
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestIndex_Cancel(t *testing.T) {
	idx := sampleIndex(t)

	cancelled := idx.Cancel([]time.Month{time.February, time.March, time.May, time.June}, 6)

	assert.Equal(t, 4, cancelled)
	assert.Equal(t, []time.Month{time.February}, idx.Months())
	assert.Equal(t, 0, idx.CountInMonth(time.March))
	assert.Equal(t, 0, idx.CountInMonth(time.May))
	assert.Equal(t, 1, idx.CountInMonth(time.February))
	assert.NotContains(t, idx.String(), "MAY")

	assert.Equal(t, 0, idx.Cancel([]time.Month{time.February, time.March, time.May, time.June}, 6))
}

func TestIndex_Cancel_Partial(t *testing.T) {
	idx := NewIndex()
	idx.Add(newEvent(t, "sat 1", "05/06/2021", "09:00", "10:00"))
	idx.Add(newEvent(t, "mon", "07/06/2021", "09:00", "10:00"))
	idx.Add(newEvent(t, "sat 2", "12/06/2021", "09:00", "10:00"))
	idx.Add(newEvent(t, "sat 3", "12/06/2021", "11:00", "12:00"))
	idx.Add(newEvent(t, "sat in july", "03/07/2021", "09:00", "10:00"))

	cancelled := idx.Cancel([]time.Month{time.June}, 6)

	assert.Equal(t, 3, cancelled)
	assert.Equal(t, []string{"Mon"}, names(idx.Events(time.June)))
	assert.Equal(t, 1, idx.CountInMonth(time.July), "months outside the set are untouched")
}

func TestIndex_Cancel_NoMatch(t *testing.T) {
	idx := sampleIndex(t)

	assert.Equal(t, 0, idx.Cancel([]time.Month{time.August, time.September}, 6))
	assert.Equal(t, 0, idx.Cancel([]time.Month{time.May}, 1))
	assert.Equal(t, 0, idx.Cancel(nil, 6))
	assert.Equal(t, 5, idx.Len())
}

func TestIndex_String(t *testing.T) {
	idx := NewIndex()
	assert.Empty(t, idx.String())

	second := newEvent(t, "second", "10/04/2021", "12:00", "13:00")
	first := newEvent(t, "first", "10/04/2021", "09:00", "10:00")
	feb := newEvent(t, "feb", "01/02/2021", "09:00", "10:00")
	idx.Add(second)
	idx.Add(first)
	idx.Add(feb)

	want := "FEBRUARY\n\n" + feb.String() + "APRIL\n\n" + first.String() + second.String()
	assert.Equal(t, want, idx.String())
}
