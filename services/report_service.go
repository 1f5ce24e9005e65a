package services

import (
	"context"
	"sort"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"eventdesk/models"
)

type ReportService struct {
	app    core.App
	events *EventService
}

func NewReportService(app core.App, events *EventService) *ReportService {
	return &ReportService{app: app, events: events}
}

// FetchDashboardSummary recomputes the dashboard aggregates from the
// current event snapshot.
func (s *ReportService) FetchDashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	events, err := s.events.FetchEvents(ctx)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	return BuildDashboardSummary(events, time.Now()), nil
}

// FetchReportsAnalytics recomputes the analytics view from the current
// event and profile snapshots.
func (s *ReportService) FetchReportsAnalytics(ctx context.Context) (models.ReportsAnalytics, error) {
	events, err := s.events.FetchEvents(ctx)
	if err != nil {
		return models.ReportsAnalytics{}, err
	}
	profiles, err := safeAll(s.app, tableProfiles)
	if err != nil {
		return models.ReportsAnalytics{}, backendError("Failed to fetch reports", err)
	}
	return BuildReportsAnalytics(events, len(profiles), time.Now()), nil
}

// eventRevenue values an event at price times its attendee count, or
// just the price when nobody registered yet. Decimal math keeps the
// per-event products exact before they are summed.
func eventRevenue(event models.Event) decimal.Decimal {
	price := decimal.NewFromFloat(event.Price)
	attendees := ParseAttendees(event.Attendees)
	if attendees > 0 {
		return price.Mul(decimal.NewFromInt(int64(attendees)))
	}
	return price
}

// BuildDashboardSummary aggregates the event list into the dashboard's
// headline stats plus a trimmed card view per event. Month-over-month
// changes compare the calendar month of now against the one before it.
func BuildDashboardSummary(events []models.Event, now time.Time) models.DashboardSummary {
	curYear, curMonth := now.Year(), now.Month()
	prevYear, prevMonth := curYear, curMonth-1
	if curMonth == time.January {
		prevYear, prevMonth = curYear-1, time.December
	}

	totalRevenue := decimal.Zero
	totalParticipants := 0
	var curEvents, prevEvents int
	var curParticipants, prevParticipants int
	curRevenue, prevRevenue := decimal.Zero, decimal.Zero

	for _, event := range events {
		attendees := ParseAttendees(event.Attendees)
		revenue := eventRevenue(event)
		totalParticipants += attendees
		totalRevenue = totalRevenue.Add(revenue)

		t, err := time.Parse("2006-01-02", event.DateISO)
		if err != nil {
			continue
		}
		switch {
		case t.Year() == curYear && t.Month() == curMonth:
			curEvents++
			curParticipants += attendees
			curRevenue = curRevenue.Add(revenue)
		case t.Year() == prevYear && t.Month() == prevMonth:
			prevEvents++
			prevParticipants += attendees
			prevRevenue = prevRevenue.Add(revenue)
		}
	}

	revenueFloat, _ := totalRevenue.Float64()
	curRevenueFloat, _ := curRevenue.Float64()
	prevRevenueFloat, _ := prevRevenue.Float64()

	stats := models.DashboardStats{
		TotalEvents:       len(events),
		Participants:      totalParticipants,
		Revenue:           revenueFloat,
		EventChange:       CalculateChange(float64(curEvents), float64(prevEvents)),
		ParticipantChange: CalculateChange(float64(curParticipants), float64(prevParticipants)),
		RevenueChange:     CalculateChange(curRevenueFloat, prevRevenueFloat),
	}
	stats.Growth = stats.RevenueChange

	cards := make([]models.DashboardEvent, 0, len(events))
	for _, event := range events {
		date := event.DateISO
		if date == "" {
			// rows that only carried a display label still get a usable date
			date = ToIsoDate(event.Date)
		}
		cards = append(cards, models.DashboardEvent{
			ID:          event.ID,
			Title:       event.Title,
			Date:        date,
			DateLabel:   FormatShortDateLabel(date),
			Location:    event.Location,
			Status:      event.Status,
			Image:       event.Image,
			Description: event.Description,
			Price:       event.Price,
			Category:    event.Category,
			Attendees:   event.Attendees,
			Tags:        event.Tags,
		})
	}
	return models.DashboardSummary{Stats: stats, Events: cards}
}

// BuildReportsAnalytics derives the reports page's metrics, the
// 12-month revenue series for the current year and the top five
// categories. userCount of zero falls back to the participant total so
// the active-users metric never reads as a dead product.
func BuildReportsAnalytics(events []models.Event, userCount int, now time.Time) models.ReportsAnalytics {
	curYear, curMonth := now.Year(), now.Month()
	prevYear, prevMonth := curYear, curMonth-1
	if curMonth == time.January {
		prevYear, prevMonth = curYear-1, time.December
	}

	totalRevenue := decimal.Zero
	curRevenue, prevRevenue := decimal.Zero, decimal.Zero
	var curEvents, prevEvents int
	var curParticipants, prevParticipants int
	totalParticipants := 0

	monthly := make([]float64, 12)
	monthlyDec := make([]decimal.Decimal, 12)

	engagementSum := 0.0
	engagementCount := 0
	curEngSum, prevEngSum := 0.0, 0.0
	curEngCount, prevEngCount := 0, 0

	counts := map[string]int{}
	order := []string{}

	for _, event := range events {
		attendees := ParseAttendees(event.Attendees)
		revenue := eventRevenue(event)
		totalParticipants += attendees
		totalRevenue = totalRevenue.Add(revenue)

		hasCapacity := event.MaxAttendees > 0
		engagementRatio := 0.0
		if hasCapacity {
			engagementRatio = float64(attendees) / float64(event.MaxAttendees) * 100
			engagementSum += engagementRatio
			engagementCount++
		}

		if _, seen := counts[event.Category]; !seen {
			order = append(order, event.Category)
		}
		counts[event.Category]++

		t, err := time.Parse("2006-01-02", event.DateISO)
		if err != nil {
			continue
		}
		if t.Year() == curYear {
			idx := int(t.Month()) - 1
			monthlyDec[idx] = monthlyDec[idx].Add(revenue)
		}
		switch {
		case t.Year() == curYear && t.Month() == curMonth:
			curEvents++
			curParticipants += attendees
			curRevenue = curRevenue.Add(revenue)
			if hasCapacity {
				curEngSum += engagementRatio
				curEngCount++
			}
		case t.Year() == prevYear && t.Month() == prevMonth:
			prevEvents++
			prevParticipants += attendees
			prevRevenue = prevRevenue.Add(revenue)
			if hasCapacity {
				prevEngSum += engagementRatio
				prevEngCount++
			}
		}
	}

	for i, d := range monthlyDec {
		monthly[i], _ = d.Float64()
	}

	engagement := 0.0
	if engagementCount > 0 {
		engagement = engagementSum / float64(engagementCount)
	}
	curEngagement, prevEngagement := 0.0, 0.0
	if curEngCount > 0 {
		curEngagement = curEngSum / float64(curEngCount)
	}
	if prevEngCount > 0 {
		prevEngagement = prevEngSum / float64(prevEngCount)
	}

	activeUsers := userCount
	if activeUsers == 0 {
		activeUsers = totalParticipants
	}

	totalFloat, _ := totalRevenue.Float64()
	curFloat, _ := curRevenue.Float64()
	prevFloat, _ := prevRevenue.Float64()

	metrics := models.ReportMetrics{
		TotalRevenue: models.Metric{
			Value:  totalFloat,
			Change: CalculateChange(curFloat, prevFloat),
		},
		ActiveUsers: models.Metric{
			Value:  float64(activeUsers),
			Change: CalculateChange(float64(curParticipants), float64(prevParticipants)),
		},
		EventsHosted: models.Metric{
			Value:  float64(len(events)),
			Change: CalculateChange(float64(curEvents), float64(prevEvents)),
		},
		AvgEngagement: models.Metric{
			Value:  engagement,
			Change: CalculateChange(curEngagement, prevEngagement),
		},
	}

	return models.ReportsAnalytics{
		Metrics:        metrics,
		MonthlyRevenue: monthly,
		TopCategories:  topCategories(counts, order, len(events)),
	}
}

// topCategories ranks categories by count, keeping first-seen order for
// ties, and reports each one's share of all events.
func topCategories(counts map[string]int, order []string, total int) []models.CategoryShare {
	shares := make([]models.CategoryShare, 0, len(order))
	for _, name := range order {
		percent := 0.0
		if total > 0 {
			percent = float64(counts[name]) / float64(total) * 100
		}
		shares = append(shares, models.CategoryShare{
			Name:    name,
			Count:   counts[name],
			Percent: percent,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Count > shares[j].Count
	})
	if len(shares) > 5 {
		shares = shares[:5]
	}
	return shares
}
