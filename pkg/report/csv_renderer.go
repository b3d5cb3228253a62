package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/klokku/agenda/pkg/calendar"
	"github.com/klokku/agenda/pkg/event"
	log "github.com/sirupsen/logrus"
)

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// RenderSummary writes one row per month followed by the total, busiest and
// longest rows.
func (t *CsvRendererImpl) RenderSummary(summary Summary) (string, error) {
	data := make([][]string, 0, len(summary.Months)+4)
	data = append(data, []string{"Month", "Events", "Time"})
	for _, m := range summary.Months {
		data = append(data, []string{calendar.MonthLabel(m.Month), strconv.Itoa(m.Events), durationToString(m.TotalTime)})
	}
	data = append(data, []string{"SUM", strconv.Itoa(summary.TotalEvents), durationToString(summary.TotalTime)})

	busiest := make([]string, 0, len(summary.BusiestMonths))
	for _, m := range summary.BusiestMonths {
		busiest = append(busiest, calendar.MonthLabel(m))
	}
	data = append(data, []string{"Busiest", strings.Join(busiest, " "), ""})
	data = append(data, []string{"Longest", summary.LongestEvent, ""})

	return writeAll(data)
}

// RenderEvents writes one row per event, months in calendar order and events
// in chronological order.
func (t *CsvRendererImpl) RenderEvents(idx *calendar.Index) (string, error) {
	data := make([][]string, 0, idx.Len()+1)
	data = append(data, []string{"Month", "Date", "Weekday", "Start", "End", "Minutes", "Name"})
	for _, m := range idx.Months() {
		for _, e := range idx.Events(m) {
			data = append(data, []string{
				calendar.MonthLabel(m),
				e.Date().Format(event.DateLayout),
				strconv.Itoa(e.Weekday()),
				e.Start().Format(event.TimeLayout),
				e.End().Format(event.TimeLayout),
				strconv.Itoa(e.DurationMinutes()),
				e.Name(),
			})
		}
	}
	return writeAll(data)
}

func writeAll(data [][]string) (string, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func durationToString(duration time.Duration) string {
	hours := strconv.Itoa(int(duration.Hours()))
	if len(hours) == 1 {
		hours = "0" + hours
	}
	minutes := strconv.Itoa(int(duration.Minutes()) % 60)
	if len(minutes) == 1 {
		minutes = "0" + minutes
	}
	return hours + ":" + minutes
}
