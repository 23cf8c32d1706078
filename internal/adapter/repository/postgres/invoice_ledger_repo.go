package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"fluxocaixa/internal/domain"
)

// InvoiceLedgerRepository implements usecase.InvoiceLedger over the fiscal
// documents table. It is strictly read-only.
type InvoiceLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceLedgerRepository creates a new InvoiceLedgerRepository.
func NewInvoiceLedgerRepository(pool *pgxpool.Pool) *InvoiceLedgerRepository {
	return &InvoiceLedgerRepository{pool: pool}
}

// ListIssued returns every invoice issued in [start, end]. Invoices have no
// settlement state; the issue date is the cash-effective date.
func (r *InvoiceLedgerRepository) ListIssued(ctx context.Context, start, end time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT id, kind, COALESCE(payment_method, ''), amount, issue_date
		FROM ledger_invoices
		WHERE issue_date BETWEEN $1 AND $2
		ORDER BY issue_date, id
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, &domain.SourceError{Kind: domain.SourceInvoices, Start: start, End: end, Err: err}
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var (
			inv    domain.Invoice
			kind   string
			amount pgtype.Numeric
		)

		if err := rows.Scan(&inv.ID, &kind, &inv.PaymentMethod, &amount, &inv.IssueDate); err != nil {
			return nil, &domain.SourceError{Kind: domain.SourceInvoices, Start: start, End: end, Err: err}
		}

		inv.Type = domain.InvoiceType(kind)

		inv.Amount, err = toDecimal(amount)
		if err != nil {
			return nil, &domain.SourceError{Kind: domain.SourceInvoices, Start: start, End: end, Err: err}
		}
		if err := domain.ValidateAmount(inv.Amount); err != nil {
			return nil, fmt.Errorf("invoice %s: %w", inv.ID, err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.SourceError{Kind: domain.SourceInvoices, Start: start, End: end, Err: err}
	}

	return invoices, nil
}
