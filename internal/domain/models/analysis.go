package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AggregateResult holds directional totals for one subject address.
type AggregateResult struct {
	TotalIn       decimal.Decimal            `json:"total_in"`
	TotalOut      decimal.Decimal            `json:"total_out"`
	PerAddressIn  map[string]decimal.Decimal `json:"per_address_in"`
	PerAddressOut map[string]decimal.Decimal `json:"per_address_out"`
}

type ActivityLevel string

const (
	ActivityNone          ActivityLevel = "no-transactions"
	ActivityHighFrequency ActivityLevel = "high-frequency"
	ActivityActive        ActivityLevel = "active"
	ActivityNormal        ActivityLevel = "normal"
	ActivityLowFrequency  ActivityLevel = "low-frequency"
)

// ActivityProfile classifies how often an address transacts.
type ActivityProfile struct {
	Level     ActivityLevel `json:"level"`
	Count     int           `json:"count"`
	Days      float64       `json:"days"`
	Frequency float64       `json:"frequency"` // transfers per day
}

func (p ActivityProfile) String() string {
	if p.Level == ActivityNone {
		return string(p.Level)
	}
	return fmt.Sprintf("%s (%.2f tx/day)", p.Level, p.Frequency)
}

type AddressType string

const (
	AddressETH     AddressType = "ETH"
	AddressTRX     AddressType = "TRX"
	AddressUnknown AddressType = "unknown"
)

// AddressInfo is the local, network-free view of an address.
type AddressInfo struct {
	Address string      `json:"address"`
	Type    AddressType `json:"type"`
	Hex     string      `json:"hex,omitempty"`
}

// DailyVolume is the summed transfer amount for one calendar day.
type DailyVolume struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// CounterpartyShare is one slice of the in/out breakdown.
type CounterpartyShare struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// AddressReport is the full analysis served to dashboards and the CLI.
type AddressReport struct {
	Address         string              `json:"address"`
	AddressType     AddressType         `json:"address_type"`
	TransferCount   int                 `json:"transfer_count"`
	Requests        int                 `json:"requests"`
	Complete        bool                `json:"complete"`
	TruncatedReason string              `json:"truncated_reason,omitempty"`
	Totals          AggregateResult     `json:"totals"`
	Profile         ActivityProfile     `json:"profile"`
	Daily           []DailyVolume       `json:"daily"`
	TopIn           []CounterpartyShare `json:"top_in"`
	TopOut          []CounterpartyShare `json:"top_out"`
	GeneratedAt     time.Time           `json:"generated_at"`
}
