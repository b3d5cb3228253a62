package calendar

import (
	"slices"
	"strings"
	"time"

	"github.com/klokku/agenda/pkg/event"
)

// Index groups events by month. Every month present holds at least one event,
// and each month's events are kept in chronological order (date, then start
// time). Months are always enumerated January to December.
//
// Index is not safe for concurrent use; Service serializes access to it.
type Index struct {
	months map[time.Month][]event.Event
}

func NewIndex() *Index {
	return &Index{
		months: make(map[time.Month][]event.Event),
	}
}

// Add inserts e before the first event of its month that e precedes, or at
// the end when there is none. Events with an equal start stay in insertion
// order. Duplicates are not detected.
func (idx *Index) Add(e event.Event) {
	events, ok := idx.months[e.Month()]
	if !ok {
		idx.months[e.Month()] = []event.Event{e}
		return
	}
	pos := slices.IndexFunc(events, func(existing event.Event) bool {
		return e.Before(existing)
	})
	if pos < 0 {
		pos = len(events)
	}
	idx.months[e.Month()] = slices.Insert(events, pos, e)
}

func (idx *Index) CountInMonth(month time.Month) int {
	return len(idx.months[month])
}

// Len returns the number of events across all months.
func (idx *Index) Len() int {
	total := 0
	for _, events := range idx.months {
		total += len(events)
	}
	return total
}

// Clone returns an independent copy of the index.
func (idx *Index) Clone() *Index {
	clone := NewIndex()
	for m, events := range idx.months {
		clone.months[m] = slices.Clone(events)
	}
	return clone
}

// Months returns the months holding events, in calendar order.
func (idx *Index) Months() []time.Month {
	months := make([]time.Month, 0, len(idx.months))
	for m := time.January; m <= time.December; m++ {
		if _, ok := idx.months[m]; ok {
			months = append(months, m)
		}
	}
	return months
}

// Events returns a copy of the month's events in chronological order.
func (idx *Index) Events(month time.Month) []event.Event {
	return slices.Clone(idx.months[month])
}

// BusiestMonths returns every month whose event count equals the highest
// count in the index, in calendar order. An empty index yields no months.
func (idx *Index) BusiestMonths() []time.Month {
	var busiest []time.Month
	maxCount := 0
	for _, m := range idx.Months() {
		count := idx.CountInMonth(m)
		switch {
		case count > maxCount:
			maxCount = count
			busiest = []time.Month{m}
		case count == maxCount:
			busiest = append(busiest, m)
		}
	}
	return busiest
}

// LongestEvent returns the name of the event with the greatest duration. Ties
// go to the first one found walking months in calendar order and events in
// chronological order. ok is false when the index is empty.
func (idx *Index) LongestEvent() (name string, ok bool) {
	var longest *event.Event
	for _, m := range idx.Months() {
		events := idx.months[m]
		for i := range events {
			if longest == nil || events[i].DurationMinutes() > longest.DurationMinutes() {
				longest = &events[i]
			}
		}
	}
	if longest == nil {
		return "", false
	}
	return longest.Name(), true
}

// Cancel removes every event that falls in one of months on the given weekday
// (1 Monday to 7 Sunday) and returns how many were removed. Months left
// without events are dropped. Months not in the index are ignored.
func (idx *Index) Cancel(months []time.Month, weekday int) int {
	cancelled := 0
	for _, m := range idx.Months() {
		if !slices.Contains(months, m) {
			continue
		}
		events := idx.months[m]
		survivors := make([]event.Event, 0, len(events))
		for _, e := range events {
			if e.Weekday() != weekday {
				survivors = append(survivors, e)
			}
		}
		cancelled += len(events) - len(survivors)
		if len(survivors) == 0 {
			delete(idx.months, m)
		} else {
			idx.months[m] = survivors
		}
	}
	return cancelled
}

// MonthLabel is the heading used for a month in rendered output.
func MonthLabel(m time.Month) string {
	return strings.ToUpper(m.String())
}

func (idx *Index) String() string {
	var sb strings.Builder
	for _, m := range idx.Months() {
		sb.WriteString(MonthLabel(m))
		sb.WriteString("\n\n")
		for _, e := range idx.months[m] {
			sb.WriteString(e.String())
		}
	}
	return sb.String()
}
