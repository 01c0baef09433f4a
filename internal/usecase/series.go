package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"TronLens/internal/domain/models"
	"TronLens/pkg/util"
)

var hundred = decimal.NewFromInt(100)

// DailyVolume buckets record amounts by calendar day in loc, oldest day first.
func DailyVolume(records []models.TransferRecord, loc *time.Location) []models.DailyVolume {
	byDay := make(map[string]*models.DailyVolume)
	for _, r := range records {
		key := util.DayKey(r.Time(), loc)
		v, ok := byDay[key]
		if !ok {
			v = &models.DailyVolume{Date: key, Amount: decimal.Zero}
			byDay[key] = v
		}
		v.Count++
		v.Amount = v.Amount.Add(r.Amount())
	}

	out := make([]models.DailyVolume, 0, len(byDay))
	for _, v := range byDay {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CounterpartyShares ranks a per-address breakdown by amount and computes each
// entry's share of the total, rounded to 2 places. limit <= 0 keeps every entry.
func CounterpartyShares(perAddress map[string]decimal.Decimal, limit int) []models.CounterpartyShare {
	total := decimal.Zero
	out := make([]models.CounterpartyShare, 0, len(perAddress))
	for addr, amt := range perAddress {
		total = total.Add(amt)
		out = append(out, models.CounterpartyShare{Address: addr, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Address < out[j].Address
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		if total.IsZero() {
			out[i].Percent = decimal.Zero
			continue
		}
		out[i].Percent = out[i].Amount.Mul(hundred).Div(total).Round(2)
	}
	return out
}
