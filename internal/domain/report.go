package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// monthLayout is the human key for a calendar-month bucket, e.g. "2025-03".
const monthLayout = "2006-01"

var oneHundred = decimal.NewFromInt(100)

// LineItemTotal accumulates one statement row. Inflow and outflow are kept
// as separate magnitudes and never netted into a single signed cell;
// sign and coloring are presentation concerns of the caller.
type LineItemTotal struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// MonthMovements is a bucketized slice of the period: one calendar month and
// the movements whose effective date falls inside it.
type MonthMovements struct {
	Month     string
	Movements []Movement
}

// MonthBucket is one aggregated calendar month of the report.
type MonthBucket struct {
	Month          string                        `json:"month"`
	MovementCount  int                           `json:"movement_count"`
	LineItems      map[LineItemKey]LineItemTotal `json:"line_items"`
	TotalInflow    decimal.Decimal               `json:"total_inflow"`
	TotalOutflow   decimal.Decimal               `json:"total_outflow"`
	NetOperating   decimal.Decimal               `json:"net_operating"`
	NetInvesting   decimal.Decimal               `json:"net_investing"`
	NetFinancing   decimal.Decimal               `json:"net_financing"`
	NetResult      decimal.Decimal               `json:"net_result"`
	OpeningBalance decimal.Decimal               `json:"opening_balance"`
	ClosingBalance decimal.Decimal               `json:"closing_balance"`
	ShareOperating decimal.Decimal               `json:"share_operating"`
	ShareInvesting decimal.Decimal               `json:"share_investing"`
	ShareFinancing decimal.Decimal               `json:"share_financing"`
	ShareResult    decimal.Decimal               `json:"share_result"`
}

// PeriodTotals carries the same aggregates as a bucket summed over the whole
// period. It has no balances: balances are positional per bucket, not
// summable.
type PeriodTotals struct {
	MovementCount  int                           `json:"movement_count"`
	LineItems      map[LineItemKey]LineItemTotal `json:"line_items"`
	TotalInflow    decimal.Decimal               `json:"total_inflow"`
	TotalOutflow   decimal.Decimal               `json:"total_outflow"`
	NetOperating   decimal.Decimal               `json:"net_operating"`
	NetInvesting   decimal.Decimal               `json:"net_investing"`
	NetFinancing   decimal.Decimal               `json:"net_financing"`
	NetResult      decimal.Decimal               `json:"net_result"`
	ShareOperating decimal.Decimal               `json:"share_operating"`
	ShareInvesting decimal.Decimal               `json:"share_investing"`
	ShareFinancing decimal.Decimal               `json:"share_financing"`
	ShareResult    decimal.Decimal               `json:"share_result"`
}

// CashFlowReport is the assembled output: one bucket per calendar month in
// chronological order plus period-wide totals. Reports are computed fresh per
// request and never mutated after assembly.
type CashFlowReport struct {
	ID          string        `json:"id"`
	GeneratedAt time.Time     `json:"generated_at"`
	PeriodStart time.Time     `json:"period_start"`
	PeriodEnd   time.Time     `json:"period_end"`
	Buckets     []MonthBucket `json:"buckets"`
	Totals      PeriodTotals  `json:"totals"`
}

// Bucketize groups movements into calendar-month buckets spanning
// [start, end], one bucket per month touched by the range even when no
// movements fall in it. Movements dated outside the range are ignored rather
// than rejected, to tolerate adapter drift.
func Bucketize(movements []Movement, start, end time.Time) []MonthMovements {
	start = dateOnly(start)
	end = dateOnly(end)

	first := monthStart(start)
	last := monthStart(end)

	groups := make([]MonthMovements, 0, monthsBetween(first, last))
	index := make(map[string]int)
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format(monthLayout)
		index[key] = len(groups)
		groups = append(groups, MonthMovements{Month: key})
	}

	for _, mv := range movements {
		d := dateOnly(mv.EffectiveDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		i := index[d.Format(monthLayout)]
		groups[i].Movements = append(groups[i].Movements, mv)
	}

	return groups
}

// Aggregate folds one month of movements into a bucket without balances.
// Balances are threaded later because they depend on the preceding months.
func Aggregate(group MonthMovements) MonthBucket {
	b := newMonthBucket(group.Month)

	inflow := map[ActivityCategory]decimal.Decimal{}
	outflow := map[ActivityCategory]decimal.Decimal{}

	for _, mv := range group.Movements {
		b.MovementCount++

		item := b.LineItems[mv.LineItem]
		switch mv.Direction {
		case DirectionInflow:
			item.Inflow = item.Inflow.Add(mv.Amount)
			b.TotalInflow = b.TotalInflow.Add(mv.Amount)
			inflow[mv.Activity] = inflow[mv.Activity].Add(mv.Amount)
		case DirectionOutflow:
			item.Outflow = item.Outflow.Add(mv.Amount)
			b.TotalOutflow = b.TotalOutflow.Add(mv.Amount)
			outflow[mv.Activity] = outflow[mv.Activity].Add(mv.Amount)
		}
		b.LineItems[mv.LineItem] = item
	}

	b.NetOperating = inflow[ActivityOperating].Sub(outflow[ActivityOperating])
	b.NetInvesting = inflow[ActivityInvesting].Sub(outflow[ActivityInvesting])
	b.NetFinancing = inflow[ActivityFinancing].Sub(outflow[ActivityFinancing])
	// Net result is defined as the sum of the three nets; computing it any
	// other way risks drift against the decomposition invariant.
	b.NetResult = b.NetOperating.Add(b.NetInvesting).Add(b.NetFinancing)

	denom := b.TotalInflow.Add(b.TotalOutflow)
	b.ShareOperating = share(b.NetOperating, denom)
	b.ShareInvesting = share(b.NetInvesting, denom)
	b.ShareFinancing = share(b.NetFinancing, denom)
	b.ShareResult = share(b.NetResult, denom)

	return b
}

// ThreadBalances threads the running balance through buckets in
// chronological order: the first bucket opens at the caller-supplied balance,
// every later bucket opens at the previous close. This left fold is the one
// stage of the pipeline that cannot run per bucket in parallel.
func ThreadBalances(buckets []MonthBucket, opening decimal.Decimal) []MonthBucket {
	out := make([]MonthBucket, len(buckets))
	balance := opening
	for i, b := range buckets {
		b.OpeningBalance = balance
		b.ClosingBalance = balance.Add(b.NetResult)
		balance = b.ClosingBalance
		out[i] = b
	}
	return out
}

// Assemble packages ordered buckets into the final report, summing line
// items, totals and nets field by field into PeriodTotals. Period shares are
// recomputed from the period-level sums; balances are excluded by design of
// the data model.
func Assemble(start, end time.Time, buckets []MonthBucket) CashFlowReport {
	totals := PeriodTotals{
		LineItems:    make(map[LineItemKey]LineItemTotal),
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		NetOperating: decimal.Zero,
		NetInvesting: decimal.Zero,
		NetFinancing: decimal.Zero,
		NetResult:    decimal.Zero,
	}

	for _, b := range buckets {
		totals.MovementCount += b.MovementCount
		for key, item := range b.LineItems {
			sum := totals.LineItems[key]
			sum.Inflow = sum.Inflow.Add(item.Inflow)
			sum.Outflow = sum.Outflow.Add(item.Outflow)
			totals.LineItems[key] = sum
		}
		totals.TotalInflow = totals.TotalInflow.Add(b.TotalInflow)
		totals.TotalOutflow = totals.TotalOutflow.Add(b.TotalOutflow)
		totals.NetOperating = totals.NetOperating.Add(b.NetOperating)
		totals.NetInvesting = totals.NetInvesting.Add(b.NetInvesting)
		totals.NetFinancing = totals.NetFinancing.Add(b.NetFinancing)
		totals.NetResult = totals.NetResult.Add(b.NetResult)
	}

	denom := totals.TotalInflow.Add(totals.TotalOutflow)
	totals.ShareOperating = share(totals.NetOperating, denom)
	totals.ShareInvesting = share(totals.NetInvesting, denom)
	totals.ShareFinancing = share(totals.NetFinancing, denom)
	totals.ShareResult = share(totals.NetResult, denom)

	return CashFlowReport{
		PeriodStart: dateOnly(start),
		PeriodEnd:   dateOnly(end),
		Buckets:     buckets,
		Totals:      totals,
	}
}

func newMonthBucket(month string) MonthBucket {
	return MonthBucket{
		Month:          month,
		LineItems:      make(map[LineItemKey]LineItemTotal),
		TotalInflow:    decimal.Zero,
		TotalOutflow:   decimal.Zero,
		NetOperating:   decimal.Zero,
		NetInvesting:   decimal.Zero,
		NetFinancing:   decimal.Zero,
		NetResult:      decimal.Zero,
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.Zero,
		ShareOperating: decimal.Zero,
		ShareInvesting: decimal.Zero,
		ShareFinancing: decimal.Zero,
		ShareResult:    decimal.Zero,
	}
}

// share is net over the cash volume moved, as a percentage. A period with no
// movements has every share defined as zero so the contract stays total.
func share(net, denom decimal.Decimal) decimal.Decimal {
	if denom.IsZero() {
		return decimal.Zero
	}
	return net.Mul(oneHundred).Div(denom)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthsBetween(first, last time.Time) int {
	years := last.Year() - first.Year()
	return years*12 + int(last.Month()) - int(first.Month()) + 1
}
