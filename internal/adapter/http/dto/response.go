package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fluxocaixa/internal/domain"
)

// LineItemTotalResponse is one statement row: inflow and outflow magnitudes,
// never netted. Formatting and sign coloring belong to the caller.
type LineItemTotalResponse struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// MonthBucketResponse represents one calendar month of the report.
type MonthBucketResponse struct {
	Month          string                           `json:"month"`
	MovementCount  int                              `json:"movement_count"`
	LineItems      map[string]LineItemTotalResponse `json:"line_items"`
	TotalInflow    decimal.Decimal                  `json:"total_inflow"`
	TotalOutflow   decimal.Decimal                  `json:"total_outflow"`
	NetOperating   decimal.Decimal                  `json:"net_operating"`
	NetInvesting   decimal.Decimal                  `json:"net_investing"`
	NetFinancing   decimal.Decimal                  `json:"net_financing"`
	NetResult      decimal.Decimal                  `json:"net_result"`
	OpeningBalance decimal.Decimal                  `json:"opening_balance"`
	ClosingBalance decimal.Decimal                  `json:"closing_balance"`
	ShareOperating decimal.Decimal                  `json:"share_operating"`
	ShareInvesting decimal.Decimal                  `json:"share_investing"`
	ShareFinancing decimal.Decimal                  `json:"share_financing"`
	ShareResult    decimal.Decimal                  `json:"share_result"`
}

// PeriodTotalsResponse carries the period-wide sums. No balances: they are
// positional per bucket.
type PeriodTotalsResponse struct {
	MovementCount  int                              `json:"movement_count"`
	LineItems      map[string]LineItemTotalResponse `json:"line_items"`
	TotalInflow    decimal.Decimal                  `json:"total_inflow"`
	TotalOutflow   decimal.Decimal                  `json:"total_outflow"`
	NetOperating   decimal.Decimal                  `json:"net_operating"`
	NetInvesting   decimal.Decimal                  `json:"net_investing"`
	NetFinancing   decimal.Decimal                  `json:"net_financing"`
	NetResult      decimal.Decimal                  `json:"net_result"`
	ShareOperating decimal.Decimal                  `json:"share_operating"`
	ShareInvesting decimal.Decimal                  `json:"share_investing"`
	ShareFinancing decimal.Decimal                  `json:"share_financing"`
	ShareResult    decimal.Decimal                  `json:"share_result"`
}

// CashFlowReportResponse represents an assembled report in API responses.
type CashFlowReportResponse struct {
	ID          string                `json:"id"`
	GeneratedAt time.Time             `json:"generated_at"`
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Buckets     []MonthBucketResponse `json:"buckets"`
	Totals      PeriodTotalsResponse  `json:"totals"`
}

// CashFlowReportFromDomain converts a domain report to a response.
func CashFlowReportFromDomain(r *domain.CashFlowReport) *CashFlowReportResponse {
	buckets := make([]MonthBucketResponse, len(r.Buckets))
	for i, b := range r.Buckets {
		buckets[i] = MonthBucketResponse{
			Month:          b.Month,
			MovementCount:  b.MovementCount,
			LineItems:      lineItemsFromDomain(b.LineItems),
			TotalInflow:    b.TotalInflow,
			TotalOutflow:   b.TotalOutflow,
			NetOperating:   b.NetOperating,
			NetInvesting:   b.NetInvesting,
			NetFinancing:   b.NetFinancing,
			NetResult:      b.NetResult,
			OpeningBalance: b.OpeningBalance,
			ClosingBalance: b.ClosingBalance,
			ShareOperating: b.ShareOperating,
			ShareInvesting: b.ShareInvesting,
			ShareFinancing: b.ShareFinancing,
			ShareResult:    b.ShareResult,
		}
	}

	return &CashFlowReportResponse{
		ID:          r.ID,
		GeneratedAt: r.GeneratedAt,
		PeriodStart: r.PeriodStart.Format(time.DateOnly),
		PeriodEnd:   r.PeriodEnd.Format(time.DateOnly),
		Buckets:     buckets,
		Totals: PeriodTotalsResponse{
			MovementCount:  r.Totals.MovementCount,
			LineItems:      lineItemsFromDomain(r.Totals.LineItems),
			TotalInflow:    r.Totals.TotalInflow,
			TotalOutflow:   r.Totals.TotalOutflow,
			NetOperating:   r.Totals.NetOperating,
			NetInvesting:   r.Totals.NetInvesting,
			NetFinancing:   r.Totals.NetFinancing,
			NetResult:      r.Totals.NetResult,
			ShareOperating: r.Totals.ShareOperating,
			ShareInvesting: r.Totals.ShareInvesting,
			ShareFinancing: r.Totals.ShareFinancing,
			ShareResult:    r.Totals.ShareResult,
		},
	}
}

func lineItemsFromDomain(items map[domain.LineItemKey]domain.LineItemTotal) map[string]LineItemTotalResponse {
	out := make(map[string]LineItemTotalResponse, len(items))
	for key, item := range items {
		out[string(key)] = LineItemTotalResponse{
			Inflow:  item.Inflow,
			Outflow: item.Outflow,
		}
	}
	return out
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
