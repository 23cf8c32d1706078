package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"fluxocaixa/internal/domain"
)

// ReportUseCase runs the cash-flow pipeline: validate range, fetch from the
// requested ledger, classify, bucketize, aggregate per bucket, thread the
// running balance across buckets, assemble. Every invocation works on its own
// fetched snapshot, so independent reports can run concurrently.
type ReportUseCase struct {
	accounts AccountLedger
	invoices InvoiceLedger
	cache    ReportCache
	idGen    IDGenerator
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewReportUseCase creates a new ReportUseCase. cache may be nil to disable
// report caching.
func NewReportUseCase(
	accounts AccountLedger,
	invoices InvoiceLedger,
	cache ReportCache,
	idGen IDGenerator,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		accounts: accounts,
		invoices: invoices,
		cache:    cache,
		idGen:    idGen,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// GenerateReportInput represents one report request.
type GenerateReportInput struct {
	Kind           domain.SourceKind
	PeriodStart    time.Time
	PeriodEnd      time.Time
	OpeningBalance decimal.Decimal
}

// GenerateReport computes a cash-flow report for the requested ledger and
// period. The range is validated before any fetch; a store failure propagates
// immediately and no partial report is ever returned.
func (uc *ReportUseCase) GenerateReport(ctx context.Context, input GenerateReportInput) (*domain.CashFlowReport, error) {
	if err := domain.ValidateRange(input.PeriodStart, input.PeriodEnd); err != nil {
		return nil, err
	}
	if input.Kind != domain.SourceAccounts && input.Kind != domain.SourceInvoices {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLedgerKind, input.Kind)
	}

	key := cacheKey(input)
	if cached := uc.cachedReport(ctx, key); cached != nil {
		return cached, nil
	}

	movements, err := uc.fetchMovements(ctx, input)
	if err != nil {
		return nil, err
	}

	groups := domain.Bucketize(movements, input.PeriodStart, input.PeriodEnd)
	buckets := aggregateAll(ctx, groups)
	buckets = domain.ThreadBalances(buckets, input.OpeningBalance)

	report := domain.Assemble(input.PeriodStart, input.PeriodEnd, buckets)
	report.ID = uc.idGen.Generate()
	report.GeneratedAt = time.Now().UTC()

	uc.storeReport(ctx, key, &report)

	uc.logger.Debug().
		Str("report_id", report.ID).
		Str("kind", string(input.Kind)).
		Int("movements", report.Totals.MovementCount).
		Int("buckets", len(report.Buckets)).
		Msg("cash-flow report generated")

	return &report, nil
}

// fetchMovements reads the requested ledger and classifies every raw entry
// into a Movement. Classification is total: nothing is dropped here.
func (uc *ReportUseCase) fetchMovements(ctx context.Context, input GenerateReportInput) ([]domain.Movement, error) {
	switch input.Kind {
	case domain.SourceAccounts:
		entries, err := uc.accounts.ListPaid(ctx, input.PeriodStart, input.PeriodEnd)
		if err != nil {
			return nil, err
		}
		movements := make([]domain.Movement, 0, len(entries))
		for _, e := range entries {
			movements = append(movements, domain.ClassifyAccountEntry(e))
		}
		return movements, nil

	default:
		invoices, err := uc.invoices.ListIssued(ctx, input.PeriodStart, input.PeriodEnd)
		if err != nil {
			return nil, err
		}
		movements := make([]domain.Movement, 0, len(invoices))
		for _, inv := range invoices {
			movements = append(movements, domain.ClassifyInvoice(inv))
		}
		return movements, nil
	}
}

// aggregateAll aggregates buckets concurrently. Buckets are independent at
// this stage; only the balance fold that follows is sequential.
func aggregateAll(ctx context.Context, groups []domain.MonthMovements) []domain.MonthBucket {
	buckets := make([]domain.MonthBucket, len(groups))

	g, _ := errgroup.WithContext(ctx)
	for i, group := range groups {
		g.Go(func() error {
			buckets[i] = domain.Aggregate(group)
			return nil
		})
	}
	// aggregation is computation-only and cannot fail
	_ = g.Wait()

	return buckets
}

func (uc *ReportUseCase) cachedReport(ctx context.Context, key string) *domain.CashFlowReport {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("report cache read failed")
		return nil
	}
	if raw == nil {
		return nil
	}

	var report domain.CashFlowReport
	if err := json.Unmarshal(raw, &report); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached report")
		return nil
	}

	return &report
}

func (uc *ReportUseCase) storeReport(ctx context.Context, key string, report *domain.CashFlowReport) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("failed to marshal report for cache")
		return
	}
	if err := uc.cache.Set(ctx, key, raw, uc.cacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}

func cacheKey(input GenerateReportInput) string {
	return fmt.Sprintf("cashflow:%s:%s:%s:%s",
		input.Kind,
		input.PeriodStart.Format(time.DateOnly),
		input.PeriodEnd.Format(time.DateOnly),
		input.OpeningBalance.String(),
	)
}
