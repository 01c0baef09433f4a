package usecase

import (
	"context"
	"fmt"

	"TronLens/internal/domain/models"
)

// pageSource serves pre-baked pages in order. A non-nil entry in errs at the
// same index fails that request; past the end of pages it returns an empty page.
type pageSource struct {
	pages  [][]models.TransferRecord
	errs   []error
	calls  int
	starts []int
	limits []int
}

func (s *pageSource) TransferPage(_ context.Context, _ string, start, limit int) (*models.TransferPage, error) {
	i := s.calls
	s.calls++
	s.starts = append(s.starts, start)
	s.limits = append(s.limits, limit)
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.pages) {
		return &models.TransferPage{}, nil
	}
	return &models.TransferPage{Transfers: s.pages[i]}, nil
}

// fakeExplorer wraps pageSource with canned account endpoints.
type fakeExplorer struct {
	pageSource
	accountErr error
	account    *models.AccountInfo
}

func (f *fakeExplorer) TokenBalances(context.Context, string, int, int) (*models.TokenList, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return &models.TokenList{Total: 1}, nil
}

func (f *fakeExplorer) AccountInfo(context.Context, string) (*models.AccountInfo, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return f.account, nil
}

func (f *fakeExplorer) ResourceInfo(context.Context, string) (*models.ResourceInfo, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return &models.ResourceInfo{}, nil
}

func makePage(n int, from, to string, quant int64, tsMillis int64) []models.TransferRecord {
	out := make([]models.TransferRecord, n)
	for i := range out {
		out[i] = models.TransferRecord{
			TransactionID:   fmt.Sprintf("tx-%d", i),
			FromAddress:     from,
			ToAddress:       to,
			Quantity:        models.QuantityFromInt(quant),
			TimestampMillis: tsMillis,
		}
	}
	return out
}

type countingMetrics struct {
	pages     int
	truncated int
	errors    []string
	latencies []string
}

func (m *countingMetrics) RecordUpstreamCall(string, string) {}
func (m *countingMetrics) RecordPages(n int)                 { m.pages += n }
func (m *countingMetrics) RecordTruncated()                  { m.truncated++ }
func (m *countingMetrics) RecordError(kind string)           { m.errors = append(m.errors, kind) }
func (m *countingMetrics) RecordLatency(op string, _ float64) {
	m.latencies = append(m.latencies, op)
}
