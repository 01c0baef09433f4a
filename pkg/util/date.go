package util

import "time"

const dayLayout = "2006-01-02"

// FromMillis converts an epoch-milliseconds timestamp to time.Time.
func FromMillis(ms int64) time.Time {
    return time.UnixMilli(ms)
}

// DayKey formats t as YYYY-MM-DD in loc. A nil loc means UTC.
func DayKey(t time.Time, loc *time.Location) string {
    if loc == nil {
        loc = time.UTC
    }
    return t.In(loc).Format(dayLayout)
}

// DaysBetween returns the fractional number of days from older to newer.
// Negative spans are reported as zero.
func DaysBetween(older, newer time.Time) float64 {
    d := newer.Sub(older)
    if d < 0 {
        return 0
    }
    return d.Hours() / 24
}

// LoadLocation resolves a zone name, falling back to UTC for "" or unknown zones.
func LoadLocation(name string) *time.Location {
    if name == "" || name == "UTC" {
        return time.UTC
    }
    loc, err := time.LoadLocation(name)
    if err != nil {
        return time.UTC
    }
    return loc
}
