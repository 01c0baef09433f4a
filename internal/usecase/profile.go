package usecase

import (
	"math"
	"time"

	"TronLens/internal/domain/models"
	"TronLens/pkg/util"
)

// Frequency thresholds in transfers per day, checked from the top.
const (
	highFrequencyAbove = 10.0
	activeAbove        = 3.0
	normalAbove        = 0.1
)

// ClassifyActivity derives an activity level from a newest-first record list.
// The span is measured from the oldest record to now and floored at one day.
func ClassifyActivity(records []models.TransferRecord, now time.Time) models.ActivityProfile {
	if len(records) == 0 {
		return models.ActivityProfile{Level: models.ActivityNone}
	}

	oldest := util.FromMillis(records[len(records)-1].TimestampMillis)
	days := util.DaysBetween(oldest, now)
	freq := float64(len(records)) / math.Max(1, days)

	return models.ActivityProfile{
		Level:     levelFor(freq),
		Count:     len(records),
		Days:      days,
		Frequency: freq,
	}
}

func levelFor(freq float64) models.ActivityLevel {
	switch {
	case freq > highFrequencyAbove:
		return models.ActivityHighFrequency
	case freq > activeAbove:
		return models.ActivityActive
	case freq > normalAbove:
		return models.ActivityNormal
	default:
		return models.ActivityLowFrequency
	}
}
