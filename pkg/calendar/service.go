package calendar

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/klokku/agenda/internal/event_bus"
	"github.com/klokku/agenda/internal/utils"
	"github.com/klokku/agenda/pkg/event"
	"github.com/klokku/agenda/pkg/loader"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrInvalidWeekday = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrNoSource       = errors.New("no event source configured")
)

type Status struct {
	Source   string
	LoadedAt time.Time
	Events   int
	Months   []time.Month
}

// Service guards a single Index: mutations take the write lock, queries share
// the read lock. Notifications are published after the lock is released.
type Service struct {
	mu       sync.RWMutex
	index    *Index
	source   loader.Source
	loadedAt time.Time
	bus      *event_bus.EventBus
	clock    utils.Clock
}

func NewService(source loader.Source, bus *event_bus.EventBus, clock utils.Clock) *Service {
	return &Service{
		index:  NewIndex(),
		source: source,
		bus:    bus,
		clock:  clock,
	}
}

// Reload replaces the index with the events currently provided by the source.
// On failure the previous index is kept.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if s.source == nil {
		return 0, ErrNoSource
	}
	events, err := loader.Events(ctx, s.source)
	if err != nil {
		return 0, fmt.Errorf("failed to reload calendar: %w", err)
	}

	idx := NewIndex()
	for _, e := range events {
		idx.Add(e)
	}

	s.mu.Lock()
	s.index = idx
	s.loadedAt = s.clock.Now()
	s.mu.Unlock()

	log.Infof("Calendar reloaded from %s with %d events", s.source.Name(), len(events))
	s.publish(ctx, event_bus.CalendarReloaded, event_bus.Reloaded{Source: s.source.Name(), Events: len(events)})
	return len(events), nil
}

func (s *Service) AddEvent(ctx context.Context, e event.Event) {
	s.mu.Lock()
	s.index.Add(e)
	s.mu.Unlock()

	log.Debugf("Added event %s (%s) to %s", e.UID(), e.Name(), e.Month())
	s.publish(ctx, event_bus.CalendarEventAdded, event_bus.EventAdded{
		UID:   e.UID(),
		Name:  e.Name(),
		Start: e.Start(),
		End:   e.End(),
	})
}

func (s *Service) CountInMonth(_ context.Context, month time.Month) (int, error) {
	if err := validateMonth(month); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.CountInMonth(month), nil
}

// BusiestMonths returns the busiest months together with their event count,
// both read from the same state of the index.
func (s *Service) BusiestMonths(_ context.Context) ([]time.Month, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	months := s.index.BusiestMonths()
	if len(months) == 0 {
		return nil, 0
	}
	return months, s.index.CountInMonth(months[0])
}

func (s *Service) LongestEvent(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.LongestEvent()
}

// Cancel removes the events of the given months that fall on weekday.
func (s *Service) Cancel(ctx context.Context, months []time.Month, weekday int) (int, error) {
	for _, m := range months {
		if err := validateMonth(m); err != nil {
			return 0, err
		}
	}
	if weekday < 1 || weekday > 7 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}

	s.mu.Lock()
	cancelled := s.index.Cancel(months, weekday)
	s.mu.Unlock()

	log.Debugf("Cancelled %d events on weekday %d in %v", cancelled, weekday, months)
	s.publish(ctx, event_bus.CalendarEventsCancelled, event_bus.EventsCancelled{
		Months:    slices.Clone(months),
		Weekday:   weekday,
		Cancelled: cancelled,
	})
	return cancelled, nil
}

// Snapshot returns a copy of the index that the caller may read freely.
func (s *Service) Snapshot(_ context.Context) *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Clone()
}

func (s *Service) Render(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.String()
}

func (s *Service) Status(_ context.Context) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := Status{
		LoadedAt: s.loadedAt,
		Events:   s.index.Len(),
		Months:   s.index.Months(),
	}
	if s.source != nil {
		status.Source = s.source.Name()
	}
	return status
}

func (s *Service) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}

func validateMonth(m time.Month) error {
	if m < time.January || m > time.December {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, m)
	}
	return nil
}
