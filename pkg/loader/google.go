package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klokku/agenda/pkg/event"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleSource reads the single (expanded) timed events of one calendar year
// from a Google Calendar.
type GoogleSource struct {
	service    *gcal.Service
	calendarId string
	year       int
}

// NewGoogleSource authenticates with an OAuth access token when one is given,
// otherwise with an API key (enough for public calendars).
func NewGoogleSource(ctx context.Context, accessToken, apiKey, calendarId string, year int) (*GoogleSource, error) {
	var opt option.ClientOption
	switch {
	case accessToken != "":
		opt = option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	case apiKey != "":
		opt = option.WithAPIKey(apiKey)
	default:
		return nil, errors.New("google source requires an access token or an API key")
	}

	service, err := gcal.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar client: %w", err)
	}
	return &GoogleSource{service: service, calendarId: calendarId, year: year}, nil
}

func (s *GoogleSource) Name() string {
	return fmt.Sprintf("google:%s/%d", s.calendarId, s.year)
}

func (s *GoogleSource) Load(ctx context.Context) ([]Record, error) {
	from := time.Date(s.year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var records []Record
	err := s.service.Events.List(s.calendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Pages(ctx, func(page *gcal.Events) error {
			records = append(records, googleEventsToRecords(page.Items)...)
			return nil
		})
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %w", err)
		log.Error(err)
		return nil, err
	}
	return records, nil
}

func googleEventsToRecords(items []*gcal.Event) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if item.Start == nil || item.End == nil || item.Start.DateTime == "" {
			log.Debugf("ignoring all-day Google event: %s", item.Summary)
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			log.Warnf("ignoring Google event %s with invalid start %q", item.Summary, item.Start.DateTime)
			continue
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			log.Warnf("ignoring Google event %s with invalid end %q", item.Summary, item.End.DateTime)
			continue
		}
		end = end.In(start.Location())
		if start.Format(event.DateLayout) != end.Format(event.DateLayout) {
			log.Warnf("ignoring Google event %s spanning several days", item.Summary)
			continue
		}
		records = append(records, Record{
			Name:  item.Summary,
			Date:  start.Format(event.DateLayout),
			Start: start.Format(event.TimeLayout),
			End:   end.Format(event.TimeLayout),
		})
	}
	return records
}
