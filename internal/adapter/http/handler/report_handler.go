package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fluxocaixa/internal/adapter/http/dto"
	"fluxocaixa/internal/domain"
	"fluxocaixa/internal/infrastructure/metrics"
	"fluxocaixa/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	GenerateReport(ctx context.Context, input usecase.GenerateReportInput) (*domain.CashFlowReport, error)
}

// ReportHandler handles cash-flow report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
	metrics  *metrics.Metrics
}

// NewReportHandler creates a new ReportHandler. metrics may be nil.
func NewReportHandler(reportUC ReportService, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, metrics: m}
}

// CashFlow generates a cash-flow report for the requested ledger and period.
func (h *ReportHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	var req dto.CashFlowReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report request", err.Error())
		return
	}

	start := time.Now()
	report, err := h.reportUC.GenerateReport(r.Context(), input)
	if err != nil {
		h.observe(input, nil, time.Since(start), "error")
		status := mapDomainError(err)
		writeError(w, status, "failed to generate report", err.Error())

		return
	}

	h.observe(input, report, time.Since(start), "ok")
	writeJSON(w, http.StatusOK, dto.CashFlowReportFromDomain(report))
}

func (h *ReportHandler) observe(input usecase.GenerateReportInput, report *domain.CashFlowReport, elapsed time.Duration, status string) {
	if h.metrics == nil {
		return
	}

	kind := string(input.Kind)
	h.metrics.ReportsGenerated.WithLabelValues(kind, status).Inc()
	h.metrics.ReportDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if report != nil {
		h.metrics.ReportMovements.WithLabelValues(kind).Observe(float64(report.Totals.MovementCount))
	}
}
