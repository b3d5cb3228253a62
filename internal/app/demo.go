package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/klokku/agenda/pkg/calendar"
	"github.com/klokku/agenda/pkg/report"
)

// Saturday in the 1 (Monday) to 7 (Sunday) numbering.
const demoCancelWeekday = 6

var demoCancelMonths = []time.Month{time.February, time.March, time.May, time.June}

// RunReport prints the loaded calendar and its aggregates, cancels the
// Saturday events of February, March, May and June, and prints the result.
func (a *Application) RunReport(ctx context.Context, w io.Writer) error {
	service := a.deps.CalendarService

	if _, err := fmt.Fprintf(w, "%s\n", service.Render(ctx)); err != nil {
		return err
	}
	if err := report.WriteSummary(w, report.Summarize(service.Snapshot(ctx))); err != nil {
		return err
	}

	cancelled, err := service.Cancel(ctx, demoCancelMonths, demoCancelWeekday)
	if err != nil {
		return err
	}
	labels := make([]string, 0, len(demoCancelMonths))
	for _, m := range demoCancelMonths {
		labels = append(labels, calendar.MonthLabel(m))
	}
	_, err = fmt.Fprintf(w, "\nCancelling weekday %d events of %v\nCancelled %d events\n\nAfter cancelling ...\n%s",
		demoCancelWeekday, labels, cancelled, service.Render(ctx))
	return err
}
