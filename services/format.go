package services

import (
	"strconv"
	"strings"
	"time"
)

// FormatDateLabel renders an ISO-ish date as a long label like
// "January 5, 2025". Unparseable input comes back unchanged.
func FormatDateLabel(value any) string {
	return formatDateWith(value, "January 2, 2006")
}

// FormatShortDateLabel renders an ISO-ish date as a short label like
// "Jan 5".
func FormatShortDateLabel(value any) string {
	return formatDateWith(value, "Jan 2")
}

func formatDateWith(value any, layout string) string {
	s := stringValue(value)
	iso := ToIsoDate(s)
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return s
	}
	return t.Format(layout)
}

// FormatTimeRange formats each side into a 12-hour clock label and joins
// them with " - "; a missing side yields just the other one.
func FormatTimeRange(start, end any) string {
	startLabel := formatClockLabel(stringValue(start))
	endLabel := formatClockLabel(stringValue(end))
	if startLabel != "" && endLabel != "" {
		return startLabel + " - " + endLabel
	}
	if startLabel != "" {
		return startLabel
	}
	return endLabel
}

var clockLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000Z",
	"2006-01-02 15:04:05",
}

// formatClockLabel accepts either a full timestamp or an HH:MM[:SS]
// string; anything it cannot read is returned as-is.
func formatClockLabel(value string) string {
	if value == "" {
		return ""
	}
	if strings.Contains(value, "T") || strings.Contains(value, " ") {
		for _, layout := range clockLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t.Format("03:04 PM")
			}
		}
	}
	parts := strings.Split(value, ":")
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return value
	}
	minutes := 0
	if len(parts) > 1 {
		minutes, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return value
		}
	}
	t := time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
	return t.Format("03:04 PM")
}
