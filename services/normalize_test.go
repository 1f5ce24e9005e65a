package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	assert.Equal(t, 0.0, ToNumber(nil))
	assert.Equal(t, 42.0, ToNumber(42))
	assert.Equal(t, 42.0, ToNumber(int64(42)))
	assert.Equal(t, 42.5, ToNumber(42.5))
	assert.Equal(t, 42.0, ToNumber("42"))
	assert.Equal(t, 42.5, ToNumber(" 42.5 "))
	assert.Equal(t, 0.0, ToNumber("abc"))
	assert.Equal(t, 0.0, ToNumber(map[string]any{}))

	// coercing an already coerced value changes nothing
	assert.Equal(t, ToNumber("42"), ToNumber(ToNumber("42")))
}

func TestNormalizeArray(t *testing.T) {
	assert.Equal(t, []any{}, NormalizeArray(nil))
	assert.Equal(t, []any{}, NormalizeArray(""))
	assert.Equal(t, []any{"a", "b"}, NormalizeArray([]any{"a", "b"}))
	assert.Equal(t, []any{"a", "b"}, NormalizeArray([]string{"a", "b"}))
	assert.Equal(t, []any{"a", "b"}, NormalizeArray(`["a","b"]`))
	assert.Equal(t, []any{42.0}, NormalizeArray("42"))
	assert.Equal(t, []any{"not json ["}, NormalizeArray("not json ["))
	assert.Equal(t, []any{7}, NormalizeArray(7))

	// normalizing twice is a no-op
	once := NormalizeArray(`["x","y"]`)
	assert.Equal(t, once, NormalizeArray(once))
}

func TestToIsoDate(t *testing.T) {
	assert.Equal(t, "2025-03-01", ToIsoDate("2025-03-01T10:00:00Z"))
	assert.Equal(t, "2025-03-01", ToIsoDate("2025-03-01"))
	assert.Equal(t, "2025-03-01", ToIsoDate("2025-03-01 10:00:00.000Z"))
	assert.Equal(t, "2025-03-01", ToIsoDate("March 1, 2025"))
	assert.Equal(t, "2025-03-01", ToIsoDate("Mar 1, 2025"))
	assert.Equal(t, "", ToIsoDate(""))
	assert.Equal(t, "", ToIsoDate(nil))
	assert.Equal(t, "next friday", ToIsoDate("next friday"))

	// already normalized input is stable
	assert.Equal(t, ToIsoDate("2025-03-01T10:00:00Z"), ToIsoDate(ToIsoDate("2025-03-01T10:00:00Z")))
}

func TestParseAttendees(t *testing.T) {
	assert.Equal(t, 150, ParseAttendees("150 Attendees"))
	assert.Equal(t, 150, ParseAttendees(150))
	assert.Equal(t, 150, ParseAttendees(150.0))
	assert.Equal(t, 0, ParseAttendees("sold out"))
	assert.Equal(t, 0, ParseAttendees(nil))
}

func TestComputeRating(t *testing.T) {
	comments := []any{
		map[string]any{"rating": 4.0},
		map[string]any{"rating": 5.0},
		map[string]any{"rating": 3.0},
	}
	assert.Equal(t, 4.0, ComputeRating(comments))
	assert.Equal(t, 0.0, ComputeRating(nil))
	assert.Equal(t, 0.0, ComputeRating([]any{}))

	// comments without a rating count toward the divisor
	mixed := []any{
		map[string]any{"rating": 4.0},
		map[string]any{"text": "no rating"},
	}
	assert.Equal(t, 2.0, ComputeRating(mixed))
}

func TestCalculateChange(t *testing.T) {
	assert.Equal(t, 0.0, CalculateChange(0, 0))
	assert.Equal(t, 100.0, CalculateChange(10, 0))
	assert.Equal(t, 50.0, CalculateChange(150, 100))
	assert.Equal(t, -50.0, CalculateChange(50, 100))
}

func TestIdString(t *testing.T) {
	assert.Equal(t, "abc", idString("abc"))
	assert.Equal(t, "7", idString(7))
	assert.Equal(t, "7", idString(7.0))
	assert.Equal(t, "", idString(nil))
}
