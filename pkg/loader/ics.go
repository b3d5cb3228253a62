package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/klokku/agenda/pkg/event"
	log "github.com/sirupsen/logrus"
)

// ICSSource reads the VEVENTs of an iCalendar file. Only timed events that
// start and end on the same day are kept; all-day, multi-day and recurring
// events are skipped.
type ICSSource struct {
	Path string
}

func NewICSSource(path string) *ICSSource {
	return &ICSSource{Path: path}
}

func (s *ICSSource) Name() string {
	return "ics:" + s.Path
}

func (s *ICSSource) Load(_ context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, err
	}
	defer f.Close()

	return ParseICS(f)
}

func ParseICS(r io.Reader) ([]Record, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ics: %w", err)
	}

	var records []Record
	for _, ve := range cal.Events() {
		record, err := vEventToRecord(ve)
		if err != nil {
			log.Warnf("skipping VEVENT %s: %v", uid(ve), err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func vEventToRecord(ve *ical.VEvent) (Record, error) {
	if ve.GetProperty(ical.ComponentPropertyRrule) != nil {
		return Record{}, errors.New("recurring events are not supported")
	}
	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return Record{}, errors.New("missing DTSTART")
	}
	if !strings.Contains(dtStart.Value, "T") {
		return Record{}, errors.New("all-day events are not supported")
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return Record{}, fmt.Errorf("invalid DTSTART: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return Record{}, fmt.Errorf("invalid DTEND: %w", err)
	}
	end = end.In(start.Location())
	if start.Format(event.DateLayout) != end.Format(event.DateLayout) {
		return Record{}, errors.New("events spanning several days are not supported")
	}

	var summary string
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}

	return Record{
		Name:  summary,
		Date:  start.Format(event.DateLayout),
		Start: start.Format(event.TimeLayout),
		End:   end.Format(event.TimeLayout),
	}, nil
}

func uid(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return "<no uid>"
}
