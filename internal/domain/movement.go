package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceKind identifies which ledger a movement was read from.
type SourceKind string

const (
	SourceAccounts SourceKind = "ACCOUNTS"
	SourceInvoices SourceKind = "INVOICES"
)

// Direction tells whether a movement brings cash in or takes cash out.
type Direction string

const (
	DirectionInflow  Direction = "INFLOW"
	DirectionOutflow Direction = "OUTFLOW"
)

// ActivityCategory is one of the three standard cash-flow statement sections.
type ActivityCategory string

const (
	ActivityOperating ActivityCategory = "OPERATING"
	ActivityInvesting ActivityCategory = "INVESTING"
	ActivityFinancing ActivityCategory = "FINANCING"
)

// Movement is a single normalized cash-affecting event: a paid account or an
// issued invoice, with direction, amount, effective date and classification.
// Movements are the common shape both ledgers are reduced to before bucketing.
type Movement struct {
	ID            string
	Source        SourceKind
	Direction     Direction
	Amount        decimal.Decimal
	EffectiveDate time.Time
	Activity      ActivityCategory
	LineItem      LineItemKey
}
