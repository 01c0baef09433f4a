package util

import (
    "strconv"

    "github.com/shopspring/decimal"
)

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
    if s == "" {
        return def
    }
    v, err := strconv.Atoi(s)
    if err != nil {
        return def
    }
    return v
}

// ShortenAddress keeps the first 6 and last 4 characters, e.g. "TXYZop...AeBf".
func ShortenAddress(addr string) string {
    if len(addr) <= 12 {
        return addr
    }
    return addr[:6] + "..." + addr[len(addr)-4:]
}

// FormatAmount renders d with 4 fractional digits.
func FormatAmount(d decimal.Decimal) string {
    return d.StringFixed(4)
}
