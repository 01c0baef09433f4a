package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"TronLens/internal/domain/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateInOut(t *testing.T) {
	records := []models.TransferRecord{
		{FromAddress: subjectAddr, ToAddress: "TB", Quantity: models.QuantityFromInt(2_500_000)},
		{FromAddress: subjectAddr, ToAddress: "TB", Quantity: models.QuantityFromInt(500_000)},
		{FromAddress: subjectAddr, ToAddress: "TC", Quantity: models.NewQuantity("1")},
		{FromAddress: "TD", ToAddress: subjectAddr, Quantity: models.QuantityFromInt(10_000_000)},
		{FromAddress: "TE", ToAddress: subjectAddr},
	}

	res := CalculateInOut(records, subjectAddr)

	assert.True(t, res.TotalOut.Equal(dec("3.000001")), res.TotalOut.String())
	assert.True(t, res.TotalIn.Equal(dec("10")), res.TotalIn.String())
	assert.True(t, res.PerAddressOut["TB"].Equal(dec("3")))
	assert.True(t, res.PerAddressOut["TC"].Equal(dec("0.000001")))

	// missing quantity still attributes the sender with a zero amount
	v, ok := res.PerAddressIn["TE"]
	assert.True(t, ok)
	assert.True(t, v.IsZero())
}

func TestCalculateInOut_SumsMatchTotals(t *testing.T) {
	var records []models.TransferRecord
	for i := 0; i < 40; i++ {
		from, to := otherAddr, subjectAddr
		if i%3 == 0 {
			from, to = subjectAddr, otherAddr
		}
		if i%5 == 0 {
			to = "TZ"
		}
		records = append(records, models.TransferRecord{
			FromAddress: from,
			ToAddress:   to,
			Quantity:    models.QuantityFromInt(int64(i*1_234_567 + 1)),
		})
	}

	res := CalculateInOut(records, subjectAddr)

	sumIn, sumOut := decimal.Zero, decimal.Zero
	for _, v := range res.PerAddressIn {
		sumIn = sumIn.Add(v)
	}
	for _, v := range res.PerAddressOut {
		sumOut = sumOut.Add(v)
	}
	assert.True(t, sumIn.Equal(res.TotalIn))
	assert.True(t, sumOut.Equal(res.TotalOut))

	all := decimal.Zero
	for _, r := range records {
		all = all.Add(r.Amount())
	}
	assert.True(t, all.Equal(res.TotalIn.Add(res.TotalOut)))
}

func TestCalculateInOut_CaseSensitiveSubject(t *testing.T) {
	records := []models.TransferRecord{
		{FromAddress: "0xABCDEF0123456789abcdef0123456789ABCDEF01", ToAddress: "x", Quantity: models.QuantityFromInt(1_000_000)},
	}
	res := CalculateInOut(records, "0xabcdef0123456789abcdef0123456789abcdef01")
	assert.True(t, res.TotalOut.IsZero())
	assert.True(t, res.TotalIn.Equal(dec("1")))
}

func TestCalculateInOut_Empty(t *testing.T) {
	res := CalculateInOut(nil, subjectAddr)
	assert.True(t, res.TotalIn.IsZero())
	assert.True(t, res.TotalOut.IsZero())
	assert.Empty(t, res.PerAddressIn)
	assert.Empty(t, res.PerAddressOut)
}
