package usecase

import (
	"github.com/shopspring/decimal"

	"TronLens/internal/domain/models"
)

// CalculateInOut splits records into inflow and outflow relative to subject.
// A record is outgoing when its sender equals subject exactly; everything else
// counts as incoming, keyed by the sender.
func CalculateInOut(records []models.TransferRecord, subject string) models.AggregateResult {
	res := models.AggregateResult{
		TotalIn:       decimal.Zero,
		TotalOut:      decimal.Zero,
		PerAddressIn:  make(map[string]decimal.Decimal),
		PerAddressOut: make(map[string]decimal.Decimal),
	}
	for _, r := range records {
		amount := r.Amount()
		if r.FromAddress == subject {
			res.TotalOut = res.TotalOut.Add(amount)
			res.PerAddressOut[r.ToAddress] = addTo(res.PerAddressOut, r.ToAddress, amount)
			continue
		}
		res.TotalIn = res.TotalIn.Add(amount)
		res.PerAddressIn[r.FromAddress] = addTo(res.PerAddressIn, r.FromAddress, amount)
	}
	return res
}

func addTo(m map[string]decimal.Decimal, key string, v decimal.Decimal) decimal.Decimal {
	if cur, ok := m[key]; ok {
		return cur.Add(v)
	}
	return v
}
