package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate    = errors.New("invalid date, expected dd/mm/yyyy")
	ErrInvalidTime    = errors.New("invalid time, expected HH:MM")
	ErrEndBeforeStart = errors.New("end time is before start time")
)

// Event is a single, non-recurring calendar occurrence. Start and end fall on
// the same day. An Event is not modified once built.
type Event struct {
	uid   string
	name  string
	date  time.Time
	start time.Time
	end   time.Time
}

// New builds an Event from raw fields. Fields are trimmed and the name is
// title-cased word by word.
func New(name, date, startTime, endTime string) (Event, error) {
	day, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	start, err := clockOn(day, startTime)
	if err != nil {
		return Event{}, err
	}
	end, err := clockOn(day, endTime)
	if err != nil {
		return Event{}, err
	}
	if end.Before(start) {
		return Event{}, fmt.Errorf("%w: %s-%s", ErrEndBeforeStart, start.Format(TimeLayout), end.Format(TimeLayout))
	}

	return Event{
		uid:   uuid.NewString(),
		name:  normalizeName(name),
		date:  day,
		start: start,
		end:   end,
	}, nil
}

func clockOn(day time.Time, value string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// normalizeName upper-cases the first letter of every whitespace-separated
// word and lower-cases the rest of it.
func normalizeName(name string) string {
	upper, lower := cases.Upper(language.Und), cases.Lower(language.Und)
	words := strings.Fields(name)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}

func (e Event) UID() string {
	return e.uid
}

func (e Event) Name() string {
	return e.name
}

func (e Event) Date() time.Time {
	return e.date
}

func (e Event) Start() time.Time {
	return e.start
}

func (e Event) End() time.Time {
	return e.end
}

// Weekday returns the ISO day of the week, 1 for Monday through 7 for Sunday.
func (e Event) Weekday() int {
	return (int(e.date.Weekday())+6)%7 + 1
}

func (e Event) Month() time.Month {
	return e.date.Month()
}

func (e Event) DurationMinutes() int {
	return int(e.end.Sub(e.start).Minutes())
}

// Before reports whether e starts strictly earlier than other, comparing the
// date first and then the start time. Equal starts are not before each other.
func (e Event) Before(other Event) bool {
	return e.start.Before(other.start)
}

func (e Event) String() string {
	return fmt.Sprintf("%8s: %s (Weekday %d)\n", "Name", e.name, e.Weekday()) +
		fmt.Sprintf("%8s: %s\t", "Date", e.date.Format(DateLayout)) +
		fmt.Sprintf("%s: %s", "Start", e.start.Format(TimeLayout)) +
		fmt.Sprintf("%12s: %s (%d')", "End", e.end.Format(TimeLayout), e.DurationMinutes()) +
		"\n------------------------------------------------------\n"
}
