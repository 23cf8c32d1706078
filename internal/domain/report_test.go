package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxocaixa/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func inflow(amount int64, effective time.Time, activity domain.ActivityCategory, item domain.LineItemKey) domain.Movement {
	return domain.Movement{
		ID:            "in",
		Source:        domain.SourceAccounts,
		Direction:     domain.DirectionInflow,
		Amount:        decimal.NewFromInt(amount),
		EffectiveDate: effective,
		Activity:      activity,
		LineItem:      item,
	}
}

func outflow(amount int64, effective time.Time, activity domain.ActivityCategory, item domain.LineItemKey) domain.Movement {
	mv := inflow(amount, effective, activity, item)
	mv.ID = "out"
	mv.Direction = domain.DirectionOutflow
	return mv
}

func TestBucketizeContiguity(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		wantMonths []string
	}{
		{
			name:  "single month",
			start: date(2025, 2, 10), end: date(2025, 2, 20),
			wantMonths: []string{"2025-02"},
		},
		{
			name:  "quarter",
			start: date(2025, 1, 1), end: date(2025, 3, 31),
			wantMonths: []string{"2025-01", "2025-02", "2025-03"},
		},
		{
			name:  "crosses year boundary",
			start: date(2024, 11, 15), end: date(2025, 2, 1),
			wantMonths: []string{"2024-11", "2024-12", "2025-01", "2025-02"},
		},
		{
			name:  "partial months at both ends",
			start: date(2025, 6, 30), end: date(2025, 8, 1),
			wantMonths: []string{"2025-06", "2025-07", "2025-08"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := domain.Bucketize(nil, tt.start, tt.end)

			require.Len(t, groups, len(tt.wantMonths))
			for i, want := range tt.wantMonths {
				assert.Equal(t, want, groups[i].Month)
				assert.Empty(t, groups[i].Movements)
			}
		})
	}
}

func TestBucketizeAssignsByEffectiveMonth(t *testing.T) {
	movements := []domain.Movement{
		inflow(100, date(2025, 1, 31), domain.ActivityOperating, domain.LineItemSalesReceipt),
		inflow(200, date(2025, 2, 1), domain.ActivityOperating, domain.LineItemSalesReceipt),
		outflow(50, date(2025, 2, 28), domain.ActivityOperating, domain.LineItemSupplierPayment),
	}

	groups := domain.Bucketize(movements, date(2025, 1, 1), date(2025, 3, 31))

	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Movements, 1)
	assert.Len(t, groups[1].Movements, 2)
	assert.Empty(t, groups[2].Movements)
}

func TestBucketizeIgnoresOutOfRangeDates(t *testing.T) {
	movements := []domain.Movement{
		inflow(100, date(2024, 12, 31), domain.ActivityOperating, domain.LineItemSalesReceipt),
		inflow(200, date(2025, 4, 1), domain.ActivityOperating, domain.LineItemSalesReceipt),
		inflow(300, date(2025, 2, 15), domain.ActivityOperating, domain.LineItemSalesReceipt),
	}

	groups := domain.Bucketize(movements, date(2025, 1, 1), date(2025, 3, 31))

	total := 0
	for _, g := range groups {
		total += len(g.Movements)
	}
	assert.Equal(t, 1, total, "out-of-range movements must be dropped, not misfiled")
}

func TestAggregateSumsAndNets(t *testing.T) {
	feb := date(2025, 2, 10)
	group := domain.MonthMovements{
		Month: "2025-02",
		Movements: []domain.Movement{
			inflow(1000, feb, domain.ActivityOperating, domain.LineItemSalesReceipt),
			outflow(400, feb, domain.ActivityOperating, domain.LineItemSupplierPayment),
			inflow(5000, feb, domain.ActivityFinancing, domain.LineItemLoanReceived),
			outflow(2000, feb, domain.ActivityInvesting, domain.LineItemEquipmentPurchase),
		},
	}

	b := domain.Aggregate(group)

	assert.Equal(t, 4, b.MovementCount)
	assert.True(t, b.TotalInflow.Equal(decimal.NewFromInt(6000)))
	assert.True(t, b.TotalOutflow.Equal(decimal.NewFromInt(2400)))
	assert.True(t, b.NetOperating.Equal(decimal.NewFromInt(600)))
	assert.True(t, b.NetInvesting.Equal(decimal.NewFromInt(-2000)))
	assert.True(t, b.NetFinancing.Equal(decimal.NewFromInt(5000)))
	assert.True(t, b.NetResult.Equal(b.NetOperating.Add(b.NetInvesting).Add(b.NetFinancing)))

	assert.True(t, b.LineItems[domain.LineItemSalesReceipt].Inflow.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.LineItems[domain.LineItemSupplierPayment].Outflow.Equal(decimal.NewFromInt(400)))

	// shares are net over total cash volume, as a percentage
	denom := decimal.NewFromInt(8400)
	assert.True(t, b.ShareOperating.Equal(decimal.NewFromInt(600).Mul(decimal.NewFromInt(100)).Div(denom)))
	assert.True(t, b.ShareResult.Equal(decimal.NewFromInt(3600).Mul(decimal.NewFromInt(100)).Div(denom)))
}

func TestAggregateKeepsInflowAndOutflowSeparatePerLineItem(t *testing.T) {
	feb := date(2025, 2, 10)
	group := domain.MonthMovements{
		Month: "2025-02",
		Movements: []domain.Movement{
			inflow(300, feb, domain.ActivityOperating, domain.LineItemOtherOperating),
			outflow(100, feb, domain.ActivityOperating, domain.LineItemOtherOperating),
		},
	}

	b := domain.Aggregate(group)

	item := b.LineItems[domain.LineItemOtherOperating]
	assert.True(t, item.Inflow.Equal(decimal.NewFromInt(300)))
	assert.True(t, item.Outflow.Equal(decimal.NewFromInt(100)))
}

func TestAggregateEmptyMonthHasZeroShares(t *testing.T) {
	b := domain.Aggregate(domain.MonthMovements{Month: "2025-07"})

	assert.Equal(t, 0, b.MovementCount)
	assert.True(t, b.TotalInflow.IsZero())
	assert.True(t, b.TotalOutflow.IsZero())
	assert.True(t, b.ShareOperating.IsZero())
	assert.True(t, b.ShareInvesting.IsZero())
	assert.True(t, b.ShareFinancing.IsZero())
	assert.True(t, b.ShareResult.IsZero())
}

func TestAggregateZeroAmountCountsTowardMovementCount(t *testing.T) {
	b := domain.Aggregate(domain.MonthMovements{
		Month: "2025-02",
		Movements: []domain.Movement{
			inflow(0, date(2025, 2, 5), domain.ActivityOperating, domain.LineItemSalesReceipt),
		},
	})

	assert.Equal(t, 1, b.MovementCount)
	assert.True(t, b.TotalInflow.IsZero())
}

func TestThreadBalancesContinuity(t *testing.T) {
	groups := domain.Bucketize([]domain.Movement{
		inflow(1000, date(2025, 1, 10), domain.ActivityOperating, domain.LineItemSalesReceipt),
		outflow(250, date(2025, 2, 10), domain.ActivityOperating, domain.LineItemSupplierPayment),
		inflow(80, date(2025, 4, 10), domain.ActivityOperating, domain.LineItemSalesReceipt),
	}, date(2025, 1, 1), date(2025, 4, 30))

	buckets := make([]domain.MonthBucket, len(groups))
	for i, g := range groups {
		buckets[i] = domain.Aggregate(g)
	}

	opening := decimal.NewFromInt(500)
	threaded := domain.ThreadBalances(buckets, opening)

	require.Len(t, threaded, 4)
	assert.True(t, threaded[0].OpeningBalance.Equal(opening))
	for i := range threaded {
		assert.True(t, threaded[i].ClosingBalance.Equal(threaded[i].OpeningBalance.Add(threaded[i].NetResult)))
		if i > 0 {
			assert.True(t, threaded[i].OpeningBalance.Equal(threaded[i-1].ClosingBalance),
				"bucket %d must open at the previous close", i)
		}
	}
	assert.True(t, threaded[3].ClosingBalance.Equal(decimal.NewFromInt(1330)))
}

func TestThreadBalancesDefaultOpeningIsZero(t *testing.T) {
	buckets := []domain.MonthBucket{domain.Aggregate(domain.MonthMovements{Month: "2025-01"})}

	threaded := domain.ThreadBalances(buckets, decimal.Zero)

	assert.True(t, threaded[0].OpeningBalance.IsZero())
	assert.True(t, threaded[0].ClosingBalance.IsZero())
}

func TestAssembleTotalsConsistency(t *testing.T) {
	movements := []domain.Movement{
		inflow(1000, date(2025, 1, 5), domain.ActivityOperating, domain.LineItemSalesReceipt),
		outflow(300, date(2025, 1, 20), domain.ActivityOperating, domain.LineItemPayroll),
		inflow(5000, date(2025, 3, 3), domain.ActivityFinancing, domain.LineItemLoanReceived),
		outflow(1200, date(2025, 2, 14), domain.ActivityInvesting, domain.LineItemEquipmentPurchase),
	}

	groups := domain.Bucketize(movements, date(2025, 1, 1), date(2025, 3, 31))
	buckets := make([]domain.MonthBucket, len(groups))
	for i, g := range groups {
		buckets[i] = domain.Aggregate(g)
	}
	buckets = domain.ThreadBalances(buckets, decimal.Zero)

	report := domain.Assemble(date(2025, 1, 1), date(2025, 3, 31), buckets)

	sumInflow, sumOutflow := decimal.Zero, decimal.Zero
	sumNet := decimal.Zero
	count := 0
	for _, b := range report.Buckets {
		sumInflow = sumInflow.Add(b.TotalInflow)
		sumOutflow = sumOutflow.Add(b.TotalOutflow)
		sumNet = sumNet.Add(b.NetResult)
		count += b.MovementCount
	}

	assert.True(t, report.Totals.TotalInflow.Equal(sumInflow))
	assert.True(t, report.Totals.TotalOutflow.Equal(sumOutflow))
	assert.True(t, report.Totals.NetResult.Equal(sumNet))
	assert.Equal(t, count, report.Totals.MovementCount)

	// classification totality: line item magnitudes add back up to the
	// total cash moved
	itemSum := decimal.Zero
	for _, item := range report.Totals.LineItems {
		itemSum = itemSum.Add(item.Inflow).Add(item.Outflow)
	}
	assert.True(t, itemSum.Equal(sumInflow.Add(sumOutflow)))
}

// The reference scenario: Jan-Mar 2025, one paid receivable of 1000 and one
// paid payable of 400, both operating, both effective in February.
func TestQuarterScenario(t *testing.T) {
	movements := []domain.Movement{
		domain.ClassifyAccountEntry(domain.AccountEntry{
			ID:          "r-1",
			Type:        domain.AccountReceivable,
			Status:      domain.AccountStatusPaid,
			Amount:      decimal.NewFromInt(1000),
			PaymentDate: date(2025, 2, 10),
			Category:    "OPERATING",
			Subcategory: "SALES_RECEIPT",
		}),
		domain.ClassifyAccountEntry(domain.AccountEntry{
			ID:          "p-1",
			Type:        domain.AccountPayable,
			Status:      domain.AccountStatusPaid,
			Amount:      decimal.NewFromInt(400),
			PaymentDate: date(2025, 2, 15),
			Category:    "OPERATING",
			Subcategory: "SUPPLIER_PAYMENT",
		}),
	}

	groups := domain.Bucketize(movements, date(2025, 1, 1), date(2025, 3, 31))
	buckets := make([]domain.MonthBucket, len(groups))
	for i, g := range groups {
		buckets[i] = domain.Aggregate(g)
	}
	buckets = domain.ThreadBalances(buckets, decimal.Zero)
	report := domain.Assemble(date(2025, 1, 1), date(2025, 3, 31), buckets)

	require.Len(t, report.Buckets, 3)

	jan, feb, mar := report.Buckets[0], report.Buckets[1], report.Buckets[2]

	assert.True(t, jan.TotalInflow.IsZero())
	assert.True(t, jan.OpeningBalance.IsZero())
	assert.True(t, jan.ClosingBalance.IsZero())

	assert.True(t, feb.TotalInflow.Equal(decimal.NewFromInt(1000)))
	assert.True(t, feb.TotalOutflow.Equal(decimal.NewFromInt(400)))
	assert.True(t, feb.NetOperating.Equal(decimal.NewFromInt(600)))
	assert.True(t, feb.NetResult.Equal(decimal.NewFromInt(600)))
	assert.True(t, feb.OpeningBalance.IsZero())
	assert.True(t, feb.ClosingBalance.Equal(decimal.NewFromInt(600)))

	assert.True(t, mar.TotalInflow.IsZero())
	assert.True(t, mar.TotalOutflow.IsZero())
	assert.True(t, mar.OpeningBalance.Equal(decimal.NewFromInt(600)))
	assert.True(t, mar.ClosingBalance.Equal(decimal.NewFromInt(600)))

	assert.True(t, report.Totals.NetResult.Equal(decimal.NewFromInt(600)))
}

func TestFinancingMovementDoesNotLeakIntoOperating(t *testing.T) {
	groups := domain.Bucketize([]domain.Movement{
		inflow(5000, date(2025, 3, 12), domain.ActivityFinancing, domain.LineItemLoanReceived),
	}, date(2025, 3, 1), date(2025, 3, 31))

	b := domain.Aggregate(groups[0])

	assert.True(t, b.NetFinancing.Equal(decimal.NewFromInt(5000)))
	assert.True(t, b.NetOperating.IsZero())
	assert.True(t, b.NetInvesting.IsZero())
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, domain.ValidateRange(date(2025, 1, 1), date(2025, 1, 1)))
	assert.NoError(t, domain.ValidateRange(date(2025, 1, 1), date(2025, 12, 31)))

	err := domain.ValidateRange(date(2025, 2, 1), date(2025, 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestParseSourceKind(t *testing.T) {
	kind, err := domain.ParseSourceKind("accounts")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceAccounts, kind)

	kind, err = domain.ParseSourceKind("INVOICES")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceInvoices, kind)

	_, err = domain.ParseSourceKind("stock")
	assert.ErrorIs(t, err, domain.ErrUnknownLedgerKind)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, domain.ValidateAmount(decimal.Zero))
	assert.NoError(t, domain.ValidateAmount(decimal.NewFromInt(10)))
	assert.ErrorIs(t, domain.ValidateAmount(decimal.NewFromInt(-1)), domain.ErrNegativeAmount)
}
