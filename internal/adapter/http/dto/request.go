package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fluxocaixa/internal/domain"
	"fluxocaixa/internal/usecase"
)

// CashFlowReportRequest is the report request contract. Dates are calendar
// dates (YYYY-MM-DD); the opening balance defaults to zero when the caller
// has no accounting history before the period.
type CashFlowReportRequest struct {
	LedgerKind     string           `json:"ledger_kind"`
	PeriodStart    string           `json:"period_start"`
	PeriodEnd      string           `json:"period_end"`
	OpeningBalance *decimal.Decimal `json:"opening_balance,omitempty"`
}

// ToUseCaseInput validates and converts to use case input.
func (r *CashFlowReportRequest) ToUseCaseInput() (usecase.GenerateReportInput, error) {
	kind, err := domain.ParseSourceKind(r.LedgerKind)
	if err != nil {
		return usecase.GenerateReportInput{}, err
	}

	start, err := time.Parse(time.DateOnly, r.PeriodStart)
	if err != nil {
		return usecase.GenerateReportInput{}, fmt.Errorf("invalid period_start: %w", err)
	}

	end, err := time.Parse(time.DateOnly, r.PeriodEnd)
	if err != nil {
		return usecase.GenerateReportInput{}, fmt.Errorf("invalid period_end: %w", err)
	}

	opening := decimal.Zero
	if r.OpeningBalance != nil {
		opening = *r.OpeningBalance
	}

	return usecase.GenerateReportInput{
		Kind:           kind,
		PeriodStart:    start,
		PeriodEnd:      end,
		OpeningBalance: opening,
	}, nil
}
