package usecase

import (
	"context"
	"time"

	"TronLens/internal/domain/models"
	drepo "TronLens/internal/domain/repository"
	applogger "TronLens/pkg/logger"
	"TronLens/pkg/metrics"
)

// DefaultTopCounterparties is how many counterparties a report lists per direction.
const DefaultTopCounterparties = 10

// AddressAnalyzer builds address reports from the explorer.
type AddressAnalyzer struct {
	explorer  drepo.Explorer
	metrics   drepo.Metrics
	log       *applogger.Logger
	loc       *time.Location
	batchSize int
	topN      int
	now       func() time.Time
}

type AnalyzerOption func(*AddressAnalyzer)

func WithLocation(loc *time.Location) AnalyzerOption {
	return func(a *AddressAnalyzer) {
		if loc != nil {
			a.loc = loc
		}
	}
}

func WithBatchSize(n int) AnalyzerOption {
	return func(a *AddressAnalyzer) {
		if n > 0 {
			a.batchSize = n
		}
	}
}

func WithTopCounterparties(n int) AnalyzerOption {
	return func(a *AddressAnalyzer) {
		if n > 0 {
			a.topN = n
		}
	}
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *AddressAnalyzer) {
		if now != nil {
			a.now = now
		}
	}
}

func WithAnalyzerLogger(l *applogger.Logger) AnalyzerOption {
	return func(a *AddressAnalyzer) {
		if l != nil {
			a.log = l
		}
	}
}

func NewAddressAnalyzer(explorer drepo.Explorer, m drepo.Metrics, opts ...AnalyzerOption) *AddressAnalyzer {
	if m == nil {
		m = metrics.Nop{}
	}
	a := &AddressAnalyzer{
		explorer:  explorer,
		metrics:   m,
		log:       applogger.Nop(),
		loc:       time.UTC,
		batchSize: DefaultBatchSize,
		topN:      DefaultTopCounterparties,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze fetches the full transfer history of address and reduces it into a
// report. A failed page does not fail the call: the report is built from the
// pages already fetched and marked incomplete.
func (a *AddressAnalyzer) Analyze(ctx context.Context, address string, batchSize int) (*models.AddressReport, error) {
	kind := DetectAddressType(address)
	if kind == models.AddressUnknown {
		return nil, ErrInvalidAddress
	}
	if batchSize <= 0 {
		batchSize = a.batchSize
	}

	started := time.Now()
	res := FetchAllTransfers(ctx, a.explorer, address, batchSize)
	a.metrics.RecordPages(res.Requests)
	if res.Truncated {
		a.metrics.RecordTruncated()
		a.log.Warn("transfer history truncated",
			applogger.String("address", address),
			applogger.Int("records", len(res.Records)),
			applogger.Int("requests", res.Requests),
			applogger.Error(res.Err))
	}

	totals := CalculateInOut(res.Records, address)
	report := &models.AddressReport{
		Address:       address,
		AddressType:   kind,
		TransferCount: len(res.Records),
		Requests:      res.Requests,
		Complete:      !res.Truncated,
		Totals:        totals,
		Profile:       ClassifyActivity(res.Records, a.now()),
		Daily:         DailyVolume(res.Records, a.loc),
		TopIn:         CounterpartyShares(totals.PerAddressIn, a.topN),
		TopOut:        CounterpartyShares(totals.PerAddressOut, a.topN),
		GeneratedAt:   a.now().UTC(),
	}
	if res.Err != nil {
		report.TruncatedReason = res.Err.Error()
	}

	a.metrics.RecordLatency("analyze", time.Since(started).Seconds())
	a.log.Debug("address analyzed",
		applogger.String("address", address),
		applogger.Int("records", report.TransferCount),
		applogger.String("profile", report.Profile.String()),
		applogger.Duration("took", time.Since(started)))
	return report, nil
}

// AddressType reports the local classification of address without any network call.
func (a *AddressAnalyzer) AddressType(address string) models.AddressInfo {
	return DescribeAddress(address)
}

func (a *AddressAnalyzer) TokenBalances(ctx context.Context, address string, start, limit int) (*models.TokenList, error) {
	if err := a.checkAddress(address); err != nil {
		return nil, err
	}
	list, err := a.explorer.TokenBalances(ctx, address, start, limit)
	if err != nil {
		return nil, a.fail("token balances", err)
	}
	return list, nil
}

func (a *AddressAnalyzer) AccountInfo(ctx context.Context, address string) (*models.AccountInfo, error) {
	if err := a.checkAddress(address); err != nil {
		return nil, err
	}
	info, err := a.explorer.AccountInfo(ctx, address)
	if err != nil {
		return nil, a.fail("account info", err)
	}
	return info, nil
}

func (a *AddressAnalyzer) ResourceInfo(ctx context.Context, address string) (*models.ResourceInfo, error) {
	if err := a.checkAddress(address); err != nil {
		return nil, err
	}
	info, err := a.explorer.ResourceInfo(ctx, address)
	if err != nil {
		return nil, a.fail("resource info", err)
	}
	return info, nil
}

func (a *AddressAnalyzer) checkAddress(address string) error {
	if DetectAddressType(address) == models.AddressUnknown {
		return ErrInvalidAddress
	}
	return nil
}

func (a *AddressAnalyzer) fail(resource string, err error) error {
	a.metrics.RecordError(resource)
	a.log.Error("upstream fetch failed", applogger.String("resource", resource), applogger.Error(err))
	return labeled(resource, err)
}
