package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/models"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestBuildDashboardSummaryEmpty(t *testing.T) {
	summary := BuildDashboardSummary(nil, fixedNow())
	assert.Equal(t, 0, summary.Stats.TotalEvents)
	assert.Equal(t, 0, summary.Stats.Participants)
	assert.Equal(t, 0.0, summary.Stats.Revenue)
	assert.Equal(t, 0.0, summary.Stats.RevenueChange)
	assert.Empty(t, summary.Events)
}

func TestBuildDashboardSummaryMonthOverMonth(t *testing.T) {
	events := []models.Event{
		{
			ID: "e1", Title: "Current", DateISO: "2025-03-10",
			Price: 20, Attendees: "100 Attendees", Status: "upcoming",
		},
		{
			ID: "e2", Title: "Previous", DateISO: "2025-02-10",
			Price: 10, Attendees: "50 Attendees", Status: "completed",
		},
	}
	summary := BuildDashboardSummary(events, fixedNow())

	assert.Equal(t, 2, summary.Stats.TotalEvents)
	assert.Equal(t, 150, summary.Stats.Participants)
	// 20*100 + 10*50
	assert.Equal(t, 2500.0, summary.Stats.Revenue)
	// one event each month
	assert.Equal(t, 0.0, summary.Stats.EventChange)
	assert.InDelta(t, 100.0, summary.Stats.ParticipantChange, 0.001)
	// 2000 vs 500
	assert.InDelta(t, 300.0, summary.Stats.RevenueChange, 0.001)
	// growth tracks the revenue delta, not the participant delta
	assert.Equal(t, summary.Stats.RevenueChange, summary.Stats.Growth)

	require.Len(t, summary.Events, 2)
	assert.Equal(t, "Mar 10", summary.Events[0].DateLabel)
	assert.Equal(t, "2025-03-10", summary.Events[0].Date)
}

func TestBuildDashboardSummaryDateFallback(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Title: "Label only", Date: "March 1, 2025"},
	}
	summary := BuildDashboardSummary(events, fixedNow())
	require.Len(t, summary.Events, 1)
	assert.Equal(t, "2025-03-01", summary.Events[0].Date)
	assert.Equal(t, "Mar 1", summary.Events[0].DateLabel)
}

func TestBuildDashboardSummaryPriceOnlyRevenue(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-03-01", Price: 99.99},
	}
	summary := BuildDashboardSummary(events, fixedNow())
	// no attendees yet, the event is still valued at its price
	assert.Equal(t, 99.99, summary.Stats.Revenue)
}

func TestBuildDashboardSummaryDecemberWrap(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-01-05", Price: 10, Attendees: "10 Attendees"},
		{ID: "e2", DateISO: "2024-12-20", Price: 10, Attendees: "20 Attendees"},
	}
	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	summary := BuildDashboardSummary(events, now)
	// January compares against the previous year's December
	assert.InDelta(t, -50.0, summary.Stats.ParticipantChange, 0.001)
	assert.InDelta(t, -50.0, summary.Stats.RevenueChange, 0.001)
}

func TestBuildReportsAnalyticsMonthlyRevenue(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-01-10", Price: 5, Attendees: "10 Attendees", Category: "Tech"},
		{ID: "e2", DateISO: "2025-03-10", Price: 10, Attendees: "10 Attendees", Category: "Tech"},
		// prior-year events never land in the monthly series
		{ID: "e3", DateISO: "2024-03-10", Price: 100, Attendees: "100 Attendees", Category: "Music"},
	}
	analytics := BuildReportsAnalytics(events, 0, fixedNow())

	require.Len(t, analytics.MonthlyRevenue, 12)
	assert.Equal(t, 50.0, analytics.MonthlyRevenue[0])
	assert.Equal(t, 0.0, analytics.MonthlyRevenue[1])
	assert.Equal(t, 100.0, analytics.MonthlyRevenue[2])
	assert.Equal(t, 0.0, analytics.MonthlyRevenue[11])

	// 50 + 100 + 10000
	assert.Equal(t, 10150.0, analytics.Metrics.TotalRevenue.Value)
	assert.Equal(t, 3.0, analytics.Metrics.EventsHosted.Value)
}

func TestBuildReportsAnalyticsActiveUsersFallback(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-03-01", Attendees: "40 Attendees"},
	}
	// no registered profiles: participants stand in
	analytics := BuildReportsAnalytics(events, 0, fixedNow())
	assert.Equal(t, 40.0, analytics.Metrics.ActiveUsers.Value)

	analytics = BuildReportsAnalytics(events, 7, fixedNow())
	assert.Equal(t, 7.0, analytics.Metrics.ActiveUsers.Value)
}

func TestBuildReportsAnalyticsEngagement(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-03-01", Attendees: "50 Attendees", MaxAttendees: 100},
		{ID: "e2", DateISO: "2025-03-02", Attendees: "75 Attendees", MaxAttendees: 100},
		// events without a capacity stay out of the average
		{ID: "e3", DateISO: "2025-03-03", Attendees: "10 Attendees"},
	}
	analytics := BuildReportsAnalytics(events, 0, fixedNow())
	assert.InDelta(t, 62.5, analytics.Metrics.AvgEngagement.Value, 0.001)
	// nothing with a capacity last month, so the change reads as growth
	assert.InDelta(t, 100.0, analytics.Metrics.AvgEngagement.Change, 0.001)
}

func TestBuildReportsAnalyticsEngagementChange(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-03-01", Attendees: "80 Attendees", MaxAttendees: 100},
		{ID: "e2", DateISO: "2025-02-01", Attendees: "40 Attendees", MaxAttendees: 100},
	}
	analytics := BuildReportsAnalytics(events, 0, fixedNow())
	// 80% this month against 40% last month
	assert.InDelta(t, 100.0, analytics.Metrics.AvgEngagement.Change, 0.001)
	assert.InDelta(t, 60.0, analytics.Metrics.AvgEngagement.Value, 0.001)
}

func TestBuildReportsAnalyticsTopCategories(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-03-01", Category: "Tech"},
		{ID: "e2", DateISO: "2025-03-02", Category: "Tech"},
		{ID: "e3", DateISO: "2025-03-03", Category: "Music"},
	}
	analytics := BuildReportsAnalytics(events, 0, fixedNow())

	require.Len(t, analytics.TopCategories, 2)
	assert.Equal(t, "Tech", analytics.TopCategories[0].Name)
	assert.Equal(t, 2, analytics.TopCategories[0].Count)
	assert.InDelta(t, 66.666, analytics.TopCategories[0].Percent, 0.01)
	assert.Equal(t, "Music", analytics.TopCategories[1].Name)
	assert.InDelta(t, 33.333, analytics.TopCategories[1].Percent, 0.01)
}

func TestBuildReportsAnalyticsCategoryTiesKeepFirstSeenOrder(t *testing.T) {
	events := []models.Event{
		{ID: "e1", DateISO: "2025-03-01", Category: "Zeta"},
		{ID: "e2", DateISO: "2025-03-02", Category: "Alpha"},
	}
	analytics := BuildReportsAnalytics(events, 0, fixedNow())
	require.Len(t, analytics.TopCategories, 2)
	assert.Equal(t, "Zeta", analytics.TopCategories[0].Name)
	assert.Equal(t, "Alpha", analytics.TopCategories[1].Name)
}

func TestBuildReportsAnalyticsTopFiveCap(t *testing.T) {
	categories := []string{"A", "B", "C", "D", "E", "F", "G"}
	events := make([]models.Event, 0, len(categories))
	for _, c := range categories {
		events = append(events, models.Event{
			ID: c, DateISO: "2025-03-01", Category: c,
		})
	}
	analytics := BuildReportsAnalytics(events, 0, fixedNow())
	assert.Len(t, analytics.TopCategories, 5)
}
