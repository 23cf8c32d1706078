package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ValidateRange checks a report period before any fetch happens. Both bounds
// are calendar dates; an inverted range is rejected outright.
func ValidateRange(start, end time.Time) error {
	if dateOnly(start).After(dateOnly(end)) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return nil
}

// ValidateAmount rejects negative amounts at ingestion. Amounts are
// magnitudes; direction carries the sign.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount.String())
	}
	return nil
}

// ParseSourceKind parses the ledger kind of a report request.
func ParseSourceKind(s string) (SourceKind, error) {
	switch SourceKind(normalizeTag(s)) {
	case SourceAccounts:
		return SourceAccounts, nil
	case SourceInvoices:
		return SourceInvoices, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLedgerKind, s)
	}
}
