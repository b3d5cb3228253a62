package event_bus

import "time"

const (
	CalendarEventAdded      EventType = "calendar.event.added"
	CalendarEventsCancelled EventType = "calendar.events.cancelled"
	CalendarReloaded        EventType = "calendar.reloaded"
)

type EventAdded struct {
	UID   string
	Name  string
	Start time.Time
	End   time.Time
}

type EventsCancelled struct {
	Months    []time.Month
	Weekday   int
	Cancelled int
}

type Reloaded struct {
	Source string
	Events int
}
