package usecase

import (
	"context"
	"time"

	"fluxocaixa/internal/domain"
)

// AccountLedger reads the accounts (payable/receivable) ledger. Only paid
// entries with a payment date inside the range are returned: cash-flow
// reporting reflects realized cash, not accrual.
type AccountLedger interface {
	ListPaid(ctx context.Context, start, end time.Time) ([]domain.AccountEntry, error)
}

// InvoiceLedger reads the invoices ledger. All invoices issued inside the
// range are returned; invoices have no pending state in this model.
type InvoiceLedger interface {
	ListIssued(ctx context.Context, start, end time.Time) ([]domain.Invoice, error)
}

// ReportCache stores assembled reports keyed by their full input. A miss is
// (nil, nil), not an error.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IDGenerator generates unique report IDs.
type IDGenerator interface {
	Generate() string
}
