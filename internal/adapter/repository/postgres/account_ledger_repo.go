package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"fluxocaixa/internal/domain"
)

// AccountLedgerRepository implements usecase.AccountLedger over the
// payable/receivable ledger table. It is strictly read-only.
type AccountLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewAccountLedgerRepository creates a new AccountLedgerRepository.
func NewAccountLedgerRepository(pool *pgxpool.Pool) *AccountLedgerRepository {
	return &AccountLedgerRepository{pool: pool}
}

// ListPaid returns paid entries whose payment date falls in [start, end].
// Pending and overdue entries are not realized cash and never show up here.
func (r *AccountLedgerRepository) ListPaid(ctx context.Context, start, end time.Time) ([]domain.AccountEntry, error) {
	query := `
		SELECT id, kind, amount, due_date, payment_date,
		       COALESCE(financial_category, ''), COALESCE(subcategory, '')
		FROM ledger_accounts
		WHERE status = 'PAID'
		  AND payment_date BETWEEN $1 AND $2
		ORDER BY payment_date, id
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, &domain.SourceError{Kind: domain.SourceAccounts, Start: start, End: end, Err: err}
	}
	defer rows.Close()

	var entries []domain.AccountEntry
	for rows.Next() {
		var (
			entry  domain.AccountEntry
			kind   string
			amount pgtype.Numeric
		)

		if err := rows.Scan(&entry.ID, &kind, &amount, &entry.DueDate, &entry.PaymentDate,
			&entry.Category, &entry.Subcategory); err != nil {
			return nil, &domain.SourceError{Kind: domain.SourceAccounts, Start: start, End: end, Err: err}
		}

		entry.Type = domain.AccountEntryType(kind)
		entry.Status = domain.AccountStatusPaid

		entry.Amount, err = toDecimal(amount)
		if err != nil {
			return nil, &domain.SourceError{Kind: domain.SourceAccounts, Start: start, End: end, Err: err}
		}
		if err := domain.ValidateAmount(entry.Amount); err != nil {
			return nil, fmt.Errorf("account entry %s: %w", entry.ID, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.SourceError{Kind: domain.SourceAccounts, Start: start, End: end, Err: err}
	}

	return entries, nil
}
