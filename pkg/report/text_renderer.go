package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/klokku/agenda/pkg/calendar"
)

// WriteSummary prints the aggregates of summary as plain text.
func WriteSummary(w io.Writer, summary Summary) error {
	var sb strings.Builder
	for _, m := range summary.Months {
		fmt.Fprintf(&sb, "Events in %s = %d\n", calendar.MonthLabel(m.Month), m.Events)
	}

	busiest := make([]string, 0, len(summary.BusiestMonths))
	for _, m := range summary.BusiestMonths {
		busiest = append(busiest, calendar.MonthLabel(m))
	}
	fmt.Fprintf(&sb, "Busiest month(s): [%s]\n", strings.Join(busiest, ", "))

	if summary.HasLongest {
		fmt.Fprintf(&sb, "Longest event: %s\n", summary.LongestEvent)
	} else {
		sb.WriteString("Longest event: none, the calendar is empty\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
