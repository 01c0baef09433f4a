package usecase

import (
	"context"
	"fmt"

	"TronLens/internal/domain/models"
	drepo "TronLens/internal/domain/repository"
)

// DefaultBatchSize is the page size used when the caller passes zero.
const DefaultBatchSize = 50

// TransferPager walks the transfer history of one address page by page.
// It is lazy and single-use: once exhausted or failed it stays that way.
type TransferPager struct {
	src       drepo.TransferSource
	address   string
	batchSize int

	start    int
	requests int
	done     bool
	err      error
}

func NewTransferPager(src drepo.TransferSource, address string, batchSize int) *TransferPager {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &TransferPager{src: src, address: address, batchSize: batchSize}
}

// Next fetches the next page. It returns false when the history is exhausted
// or a request failed; check Err to tell them apart.
func (p *TransferPager) Next(ctx context.Context) ([]models.TransferRecord, bool) {
	if p.done {
		return nil, false
	}
	if err := ctx.Err(); err != nil {
		p.fail(err)
		return nil, false
	}

	p.requests++
	page, err := p.src.TransferPage(ctx, p.address, p.start, p.batchSize)
	if err != nil {
		p.fail(err)
		return nil, false
	}

	var recs []models.TransferRecord
	if page != nil {
		recs = page.Transfers
	}
	if len(recs) == 0 {
		p.done = true
		return nil, false
	}

	p.start += p.batchSize
	if len(recs) < p.batchSize {
		p.done = true
	}
	return recs, true
}

func (p *TransferPager) fail(err error) {
	p.done = true
	p.err = fmt.Errorf("transfers page at start=%d: %w", p.start, err)
}

// Err is the error that stopped the walk, if any.
func (p *TransferPager) Err() error { return p.err }

// Requests is the number of page requests issued so far.
func (p *TransferPager) Requests() int { return p.requests }

// FetchResult carries everything gathered by FetchAllTransfers. When Truncated
// is set, Records holds the pages fetched before Err.
type FetchResult struct {
	Records   []models.TransferRecord
	Requests  int
	Truncated bool
	Err       error
}

// FetchAllTransfers drains a TransferPager into memory, newest first.
func FetchAllTransfers(ctx context.Context, src drepo.TransferSource, address string, batchSize int) FetchResult {
	pager := NewTransferPager(src, address, batchSize)
	var all []models.TransferRecord
	for {
		recs, ok := pager.Next(ctx)
		if !ok {
			break
		}
		all = append(all, recs...)
	}
	return FetchResult{
		Records:   all,
		Requests:  pager.Requests(),
		Truncated: pager.Err() != nil,
		Err:       pager.Err(),
	}
}
