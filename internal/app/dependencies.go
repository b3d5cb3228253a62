package app

import (
	"github.com/klokku/agenda/internal/event_bus"
	"github.com/klokku/agenda/internal/utils"
	"github.com/klokku/agenda/pkg/calendar"
	"github.com/klokku/agenda/pkg/loader"
	"github.com/klokku/agenda/pkg/report"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	Source loader.Source

	CalendarService *calendar.Service
	CalendarHandler *calendar.Handler

	CsvRenderer   *report.CsvRendererImpl
	ReportHandler *report.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(source loader.Source) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = utils.SystemClock{}
	deps.Source = source

	deps.CalendarService = calendar.NewService(deps.Source, deps.EventBus, deps.Clock)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarService)

	deps.CsvRenderer = report.NewCsvRenderer()
	deps.ReportHandler = report.NewHandler(deps.CalendarService.Snapshot, deps.CsvRenderer)

	subscribeAuditLog(deps.EventBus)

	return deps
}
