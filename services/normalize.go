package services

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/tools/types"
)

var firstIntRe = regexp.MustCompile(`\d+`)

// ToNumber coerces a loosely typed backend value into a float64. Numeric
// strings are parsed; anything else (nil, objects, unparseable strings)
// yields 0. Never fails.
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// NormalizeArray turns a loose backend value into a sequence. Strings are
// tried as JSON arrays first, falling back to a single-element sequence
// with the parsed value or the raw string. Never returns nil.
func NormalizeArray(value any) []any {
	switch v := value.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case types.JSONRaw:
		if len(v) == 0 {
			return []any{}
		}
		return NormalizeArray(string(v))
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return []any{}
		}
		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
			return []any{v}
		}
		if arr, ok := parsed.([]any); ok {
			return arr
		}
		if parsed == nil {
			return []any{}
		}
		return []any{parsed}
	default:
		return []any{value}
	}
}

var isoDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05.000Z",
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ToIsoDate normalizes a date-like value to a YYYY-MM-DD string. Values
// carrying a time separator are truncated to the date portion; other
// parseable dates are reformatted; unparseable input is returned unchanged.
func ToIsoDate(value any) string {
	s := stringValue(value)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "T") {
		if len(s) >= 10 {
			return s[:10]
		}
		return s
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// ParseAttendees extracts an attendee count from either a number or a
// free-text label like "150 Attendees".
func ParseAttendees(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		if match := firstIntRe.FindString(v); match != "" {
			n, _ := strconv.Atoi(match)
			return n
		}
	}
	return 0
}

// ComputeRating averages the "rating" field of a comment list, rounded to
// one decimal place. An empty list yields 0.
func ComputeRating(comments []any) float64 {
	if len(comments) == 0 {
		return 0
	}
	total := 0.0
	for _, comment := range comments {
		if m, ok := comment.(map[string]any); ok {
			total += ToNumber(m["rating"])
		}
	}
	return math.Round(total/float64(len(comments))*10) / 10
}

// CalculateChange returns the percentage change from previous to current:
// 0 when both are zero, 100 when only previous is zero.
func CalculateChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// stringValue extracts the string form of a loose value; non-stringish
// values (numbers, maps) yield "".
func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// idString casts an identifier to its string form, matching how lookup
// indices are keyed.
func idString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// nonNil returns the first present, non-nil value among the given keys.
func nonNil(row map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// rowString returns the first non-empty string form among the given keys.
func rowString(row map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringValue(row[key]); s != "" {
			return s
		}
	}
	return ""
}

func toBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}

func toStringList(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s := stringValue(v); s != "" {
			out = append(out, s)
			continue
		}
		if v != nil {
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
