package report

import (
	"time"

	"github.com/klokku/agenda/pkg/calendar"
)

type MonthSummary struct {
	Month     time.Month
	Events    int
	TotalTime time.Duration
}

// Summary holds the aggregates printed next to the calendar listing.
type Summary struct {
	Months        []MonthSummary
	BusiestMonths []time.Month
	LongestEvent  string
	HasLongest    bool
	TotalEvents   int
	TotalTime     time.Duration
}

func Summarize(idx *calendar.Index) Summary {
	summary := Summary{
		Months:        make([]MonthSummary, 0, 12),
		BusiestMonths: idx.BusiestMonths(),
		TotalEvents:   idx.Len(),
	}
	summary.LongestEvent, summary.HasLongest = idx.LongestEvent()

	for _, m := range idx.Months() {
		monthSummary := MonthSummary{Month: m, Events: idx.CountInMonth(m)}
		for _, e := range idx.Events(m) {
			monthSummary.TotalTime += time.Duration(e.DurationMinutes()) * time.Minute
		}
		summary.TotalTime += monthSummary.TotalTime
		summary.Months = append(summary.Months, monthSummary)
	}
	return summary
}
