package models

// Dashboard and report shapes are derived aggregates, recomputed from the
// current event/profile snapshot on every call and never persisted.

type DashboardStats struct {
	TotalEvents       int     `json:"total_events"`
	Participants      int     `json:"participants"`
	Revenue           float64 `json:"revenue"`
	Growth            float64 `json:"growth"`
	EventChange       float64 `json:"event_change"`
	ParticipantChange float64 `json:"participant_change"`
	RevenueChange     float64 `json:"revenue_change"`
}

type DashboardEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	DateLabel   string   `json:"date_label"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Attendees   string   `json:"attendees"`
	Tags        []string `json:"tags"`
}

type DashboardSummary struct {
	Stats  DashboardStats   `json:"stats"`
	Events []DashboardEvent `json:"events"`
}

type Metric struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type ReportMetrics struct {
	TotalRevenue  Metric `json:"total_revenue"`
	ActiveUsers   Metric `json:"active_users"`
	EventsHosted  Metric `json:"events_hosted"`
	AvgEngagement Metric `json:"avg_engagement"`
}

type CategoryShare struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type ReportsAnalytics struct {
	Metrics        ReportMetrics   `json:"metrics"`
	MonthlyRevenue []float64       `json:"monthly_revenue"`
	TopCategories  []CategoryShare `json:"top_categories"`
}
