package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"eventdesk/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Dashboard(e *core.RequestEvent) error {
	summary, err := h.reports.FetchDashboardSummary(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) Analytics(e *core.RequestEvent) error {
	analytics, err := h.reports.FetchReportsAnalytics(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, analytics)
}
