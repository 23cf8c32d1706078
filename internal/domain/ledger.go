package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountEntryType distinguishes receivables from payables.
type AccountEntryType string

const (
	AccountReceivable AccountEntryType = "RECEIVABLE"
	AccountPayable    AccountEntryType = "PAYABLE"
)

// AccountStatus is the settlement state of an account entry. Only paid
// entries are realized cash and appear in cash-flow reports.
type AccountStatus string

const (
	AccountStatusPending AccountStatus = "PENDING"
	AccountStatusPaid    AccountStatus = "PAID"
	AccountStatusOverdue AccountStatus = "OVERDUE"
)

// AccountEntry is a raw payable or receivable as stored in the accounts
// ledger. PaymentDate is the cash-effective date; DueDate is accrual-only
// and never drives reporting.
type AccountEntry struct {
	ID          string
	Type        AccountEntryType
	Status      AccountStatus
	Amount      decimal.Decimal
	DueDate     time.Time
	PaymentDate time.Time
	Category    string
	Subcategory string
}

// InvoiceType distinguishes entry (incoming) from exit (outgoing) documents.
type InvoiceType string

const (
	InvoiceEntry InvoiceType = "ENTRY"
	InvoiceExit  InvoiceType = "EXIT"
)

// Invoice is a raw fiscal document as stored in the invoices ledger.
// Invoices have no pending state; the issue date is the effective date.
type Invoice struct {
	ID            string
	Type          InvoiceType
	PaymentMethod string
	Amount        decimal.Decimal
	IssueDate     time.Time
}
