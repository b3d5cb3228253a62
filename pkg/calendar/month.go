package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMonth accepts a month number (1-12) or an English month name, full or
// abbreviated to three letters, in any case.
func ParseMonth(value string) (time.Month, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		m := time.Month(n)
		if err := validateMonth(m); err != nil {
			return 0, err
		}
		return m, nil
	}
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(value, name) || strings.EqualFold(value, name[:3]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, value)
}

func ParseMonths(values []string) ([]time.Month, error) {
	months := make([]time.Month, 0, len(values))
	for _, v := range values {
		m, err := ParseMonth(v)
		if err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, nil
}

func monthLabels(months []time.Month) []string {
	labels := make([]string, 0, len(months))
	for _, m := range months {
		labels = append(labels, MonthLabel(m))
	}
	return labels
}
