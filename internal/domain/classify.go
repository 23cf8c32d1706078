package domain

import "strings"

// ClassifyAccountEntry normalizes a paid account into a Movement.
// Direction follows the entry type, activity follows the financial category
// tag (defaulting to operating when untagged), and the statement row follows
// the subcategory table with a per-activity catch-all fallback.
func ClassifyAccountEntry(entry AccountEntry) Movement {
	direction := DirectionOutflow
	if entry.Type == AccountReceivable {
		direction = DirectionInflow
	}

	activity := parseActivity(entry.Category)

	item, ok := accountLineItems[normalizeTag(entry.Subcategory)]
	if !ok {
		item = otherLineItem(activity)
	}

	return Movement{
		ID:            entry.ID,
		Source:        SourceAccounts,
		Direction:     direction,
		Amount:        entry.Amount,
		EffectiveDate: entry.PaymentDate,
		Activity:      activity,
		LineItem:      item,
	}
}

// ClassifyInvoice normalizes an invoice into a Movement. Invoices are always
// operating activity: entries are inflows broken down by payment method,
// exits collapse into the invoice payment row.
func ClassifyInvoice(inv Invoice) Movement {
	direction := DirectionInflow
	item, ok := invoiceReceiptItems[normalizeTag(inv.PaymentMethod)]
	if !ok {
		item = LineItemOtherReceipt
	}

	if inv.Type == InvoiceExit {
		direction = DirectionOutflow
		item = LineItemInvoicePayment
	}

	return Movement{
		ID:            inv.ID,
		Source:        SourceInvoices,
		Direction:     direction,
		Amount:        inv.Amount,
		EffectiveDate: inv.IssueDate,
		Activity:      ActivityOperating,
		LineItem:      item,
	}
}

func parseActivity(tag string) ActivityCategory {
	switch normalizeTag(tag) {
	case string(ActivityInvesting):
		return ActivityInvesting
	case string(ActivityFinancing):
		return ActivityFinancing
	default:
		return ActivityOperating
	}
}

func normalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}
