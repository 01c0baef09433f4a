package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64_Lenient(t *testing.T) {
	tests := []struct {
		in   string
		want Int64
	}{
		{`1700000000000`, 1700000000000},
		{`"1700000000000"`, 1700000000000},
		{`"6"`, 6},
		{`null`, 0},
		{`"abc"`, 0},
		{`true`, 0},
		{`{"x":1}`, 0},
	}
	for _, tt := range tests {
		var n Int64
		require.NoError(t, json.Unmarshal([]byte(tt.in), &n), tt.in)
		assert.Equal(t, tt.want, n, tt.in)
	}
}

func TestTransferPage_MalformedNumbersReadAsZero(t *testing.T) {
	body := `{"total":"2","token_transfers":[
		{"transaction_id":"a","quant":"1","block_ts":"1700000000000","tokenInfo":{"tokenDecimal":"6"}},
		{"transaction_id":"b","quant":{},"block_ts":"soon","tokenInfo":{"tokenDecimal":false}}
	]}`

	var page TransferPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Transfers, 2)
	assert.EqualValues(t, 2, page.Total)

	first := page.Transfers[0]
	assert.Equal(t, "a", first.TransactionID)
	assert.EqualValues(t, 1700000000000, first.TimestampMillis)
	assert.EqualValues(t, 6, first.TokenInfo.TokenDecimal)
	assert.True(t, first.Quantity.Valid())

	second := page.Transfers[1]
	assert.Equal(t, "b", second.TransactionID)
	assert.Zero(t, second.TimestampMillis)
	assert.Zero(t, second.TokenInfo.TokenDecimal)
	assert.True(t, second.Amount().IsZero())
}

func TestAccountInfo_StringCounters(t *testing.T) {
	var info AccountInfo
	require.NoError(t, json.Unmarshal([]byte(`{"totalTransactionCount":"12","date_created":null,"bandwidth":{"energyLimit":"n/a"}}`), &info))
	assert.EqualValues(t, 12, info.TotalTransactionCount)
	assert.Zero(t, info.DateCreated)
	assert.Zero(t, info.Bandwidth.EnergyLimit)
}
