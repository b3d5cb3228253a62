package loader

import (
	"context"
	"fmt"

	"github.com/klokku/agenda/internal/config"
)

// NewSource builds the Source described by the configuration.
func NewSource(ctx context.Context, cfg config.Application) (Source, error) {
	switch cfg.Source.Type {
	case "csv":
		return NewCSVSource(cfg.Source.Path), nil
	case "yaml", "yml":
		return NewYAMLSource(cfg.Source.Path), nil
	case "ics":
		return NewICSSource(cfg.Source.Path), nil
	case "google":
		src, err := NewGoogleSource(ctx, cfg.Google.AccessToken, cfg.Google.ApiKey, cfg.Google.CalendarId, cfg.Source.Year)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source.Type)
	}
}
