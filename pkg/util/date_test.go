package util

import (
    "testing"
    "time"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
)

func TestDayKeyUsesLocation(t *testing.T) {
    ts := time.Date(2024, 10, 10, 23, 30, 0, 0, time.UTC)
    assert.Equal(t, "2024-10-10", DayKey(ts, nil))

    plus2 := time.FixedZone("plus2", 2*60*60)
    assert.Equal(t, "2024-10-11", DayKey(ts, plus2))
}

func TestFromMillis(t *testing.T) {
    ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
    got := FromMillis(ts.UnixMilli())
    if !got.Equal(ts) {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestDaysBetween(t *testing.T) {
    a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
    assert.InDelta(t, 0.5, DaysBetween(a, a.Add(12*time.Hour)), 1e-9)
    assert.Equal(t, 0.0, DaysBetween(a.Add(time.Hour), a))
}

func TestLoadLocationFallback(t *testing.T) {
    assert.Equal(t, time.UTC, LoadLocation(""))
    assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
}

func TestStringsHelpers(t *testing.T) {
    assert.Equal(t, 7, ParseIntDefault("x", 7))
    assert.Equal(t, 12, ParseIntDefault("12", 7))
    assert.Equal(t, "TXYZop...AeBf", ShortenAddress("TXYZopYRdj2D9XRtbG411XZZ3kM5VkAeBf"))
    assert.Equal(t, "short", ShortenAddress("short"))
    assert.Equal(t, "2.5000", FormatAmount(decimal.RequireFromString("2.5")))
}
