package repository

import (
	"context"

	"TronLens/internal/domain/models"
)

// TransferSource returns one page of TRC20 transfers involving address.
type TransferSource interface {
	TransferPage(ctx context.Context, address string, start, limit int) (*models.TransferPage, error)
}

// Explorer is the read-only surface of the block explorer API.
type Explorer interface {
	TransferSource
	TokenBalances(ctx context.Context, address string, start, limit int) (*models.TokenList, error)
	AccountInfo(ctx context.Context, address string) (*models.AccountInfo, error)
	ResourceInfo(ctx context.Context, address string) (*models.ResourceInfo, error)
}

type Metrics interface {
	RecordUpstreamCall(endpoint, result string)
	RecordPages(n int)
	RecordTruncated()
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
