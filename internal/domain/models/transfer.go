package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord is one TRC20 token movement as reported by the explorer.
type TransferRecord struct {
	TransactionID   string    `json:"transaction_id,omitempty"`
	FromAddress     string    `json:"from_address"`
	ToAddress       string    `json:"to_address"`
	Quantity        Quantity  `json:"quant"`
	TimestampMillis int64     `json:"block_ts"`
	Confirmed       bool      `json:"confirmed,omitempty"`
	TokenInfo       TokenInfo `json:"tokenInfo"`
}

// TokenInfo describes the token moved by a transfer.
type TokenInfo struct {
	TokenID      string `json:"tokenId,omitempty"`
	TokenAbbr    string `json:"tokenAbbr,omitempty"`
	TokenName    string `json:"tokenName,omitempty"`
	TokenDecimal Int64  `json:"tokenDecimal,omitempty"`
}

// UnmarshalJSON decodes a record leniently: a malformed block_ts reads as zero
// instead of failing the whole page.
func (r *TransferRecord) UnmarshalJSON(b []byte) error {
	type plain TransferRecord
	aux := struct {
		*plain
		TimestampMillis Int64 `json:"block_ts"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.TimestampMillis = int64(aux.TimestampMillis)
	return nil
}

// Amount converts the raw quantity using the fixed 6-decimal convention.
func (r TransferRecord) Amount() decimal.Decimal {
	return r.Quantity.Scaled(TokenDecimals)
}

// Time returns the block timestamp.
func (r TransferRecord) Time() time.Time {
	return time.UnixMilli(r.TimestampMillis)
}

// TransferPage is the response of /filter/trc20/transfers.
type TransferPage struct {
	Total      Int64            `json:"total"`
	RangeTotal Int64            `json:"rangeTotal"`
	Transfers  []TransferRecord `json:"token_transfers"`
}
