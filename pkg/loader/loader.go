package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klokku/agenda/pkg/event"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMissingName    = errors.New("event name is empty")
	ErrUnknownSource  = errors.New("unknown event source type")
	ErrSourceNotFound = errors.New("event source not found")
)

// Record is a raw event tuple as read from a source: a name, a dd/mm/yyyy date
// and HH:MM start and end times.
type Record struct {
	Name  string `yaml:"name" json:"name"`
	Date  string `yaml:"date" json:"date"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// Source produces raw event records.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Record, error)
}

// Validate checks that r can be turned into an event.
func Validate(r Record) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if _, err := time.Parse(event.DateLayout, strings.TrimSpace(r.Date)); err != nil {
		return fmt.Errorf("%w: %q", event.ErrInvalidDate, r.Date)
	}
	start, err := time.Parse(event.TimeLayout, strings.TrimSpace(r.Start))
	if err != nil {
		return fmt.Errorf("%w: start %q", event.ErrInvalidTime, r.Start)
	}
	end, err := time.Parse(event.TimeLayout, strings.TrimSpace(r.End))
	if err != nil {
		return fmt.Errorf("%w: end %q", event.ErrInvalidTime, r.End)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: %s-%s", event.ErrEndBeforeStart, r.Start, r.End)
	}
	return nil
}

// Events loads every record of src and builds events out of them. Records that
// fail validation are logged and skipped.
func Events(ctx context.Context, src Source) ([]event.Event, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events from %s: %w", src.Name(), err)
	}

	events := make([]event.Event, 0, len(records))
	for i, r := range records {
		if err := Validate(r); err != nil {
			log.Warnf("skipping record %d from %s: %v", i+1, src.Name(), err)
			continue
		}
		e, err := event.New(r.Name, r.Date, r.Start, r.End)
		if err != nil {
			log.Warnf("skipping record %d from %s: %v", i+1, src.Name(), err)
			continue
		}
		events = append(events, e)
	}
	log.Debugf("Loaded %d of %d records from %s", len(events), len(records), src.Name())
	return events, nil
}
